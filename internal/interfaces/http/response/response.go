package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "dye-kulture.backend/internal/domain/errors"
	"dye-kulture.backend/pkg/logger"
	"go.uber.org/zap"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Anything that is not an AppError becomes a
// generic 500 so internal detail never leaks to the client; the underlying
// error is logged with request context.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
		logger.Error(c.Request.Context(), "unhandled error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
