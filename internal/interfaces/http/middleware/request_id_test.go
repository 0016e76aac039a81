package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"dye-kulture.backend/internal/interfaces/http/middleware"
	"dye-kulture.backend/pkg/logger"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	var ctxID interface{}
	r.GET("/x", func(c *gin.Context) {
		ctxID = c.Request.Context().Value(logger.RequestIDKey)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	got := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err, "generated ids are uuids")
	assert.Equal(t, got, ctxID, "the id is visible to the logger via the request context")
}

func TestRequestIDMiddleware_HonorsIncomingID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "upstream-id-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "upstream-id-7", w.Header().Get("X-Request-ID"))
}
