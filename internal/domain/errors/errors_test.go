package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	wrapped := NewAppError(http.StatusBadRequest, CodeBadRequest, "bad input", ErrInvalidInput)
	assert.Equal(t, ErrInvalidInput.Error(), wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, ErrInvalidInput))

	bare := NewAppError(http.StatusBadRequest, CodeBadRequest, "just a message", nil)
	assert.Equal(t, "just a message", bare.Error())
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("x").Status)
	assert.Equal(t, CodeNotFound, NotFound("x").Code)
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").Status)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("x").Status)

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, "internal server error", internal.Message)
}
