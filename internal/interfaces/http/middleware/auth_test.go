package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"dye-kulture.backend/internal/interfaces/http/middleware"
	"dye-kulture.backend/pkg/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	userID := uuid.New()
	token, err := jwtService.GenerateToken(userID)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(jwtService), func(c *gin.Context) {
		got, ok := middleware.GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, userID, got)
		c.JSON(http.StatusOK, gin.H{"userId": got.String()})
	})

	w := get(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(jwtService), func(c *gin.Context) {
		t.Fatal("handler must not run without a token")
	})

	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BadFormat(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(jwtService), func(c *gin.Context) {
		t.Fatal("handler must not run without a token")
	})

	for _, header := range []string{"Basic abc123", "bearer lowercase-prefix", "just-a-token"} {
		w := get(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(jwtService), func(c *gin.Context) {
		t.Fatal("handler must not run with a bad token")
	})

	w := get(r, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// signed with a different secret
	other := jwt.NewJWTService("other-secret", time.Hour)
	token, err := other.GenerateToken(uuid.New())
	require.NoError(t, err)
	w = get(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := jwt.NewJWTService("test-secret", -time.Hour)
	token, err := expired.GenerateToken(uuid.New())
	require.NoError(t, err)

	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(jwtService), func(c *gin.Context) {
		t.Fatal("handler must not run with an expired token")
	})

	w := get(r, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestGetUserID_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := middleware.GetUserID(c)
	assert.False(t, ok)
}
