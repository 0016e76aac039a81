package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitIsIdempotent(t *testing.T) {
	Init("test")
	first := GetLogger()
	require.NotNil(t, first)

	Init("production")
	assert.Same(t, first, GetLogger(), "Init only runs once")
}

func TestWithContext(t *testing.T) {
	Init("test")

	assert.NotNil(t, WithContext(nil))
	assert.NotNil(t, WithContext(context.Background()))

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	assert.NotNil(t, WithContext(ctx))
}

func TestLoggingHelpersDoNotPanic(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	Info(ctx, "info message")
	Warn(ctx, "warn message")
	Error(ctx, "error message")
	Debug(ctx, "debug message")
	LogRequest(ctx, "GET", "/health", 200, 3*time.Millisecond, "127.0.0.1")
}
