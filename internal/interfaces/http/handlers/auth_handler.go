package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"dye-kulture.backend/internal/domain/entities"
	domainerrors "dye-kulture.backend/internal/domain/errors"
	"dye-kulture.backend/internal/interfaces/http/middleware"
	"dye-kulture.backend/internal/interfaces/http/response"
)

// AuthService is the auth usecase surface consumed by the handler
type AuthService interface {
	Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	VerifyEmail(ctx context.Context, token string) (*entities.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	auth, err := h.authService.Register(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailTaken) {
			response.Error(c, domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeEmailTaken, "User already exists with this email", err))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "User registered successfully. Please check your email for verification.",
		"user":    auth.User,
		"token":   auth.Token,
	})
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	auth, err := h.authService.Login(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrInvalidCredentials):
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Invalid credentials", err))
		case errors.Is(err, domainerrors.ErrEmailNotVerified):
			response.Error(c, domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeEmailNotVerified, "Please verify your email before logging in", err))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    auth.User,
		"token":   auth.Token,
	})
}

// VerifyEmail handles email verification
// GET /api/v1/auth/verify-email?token=
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, domainerrors.BadRequest("Verification token is required"))
		return
	}

	user, err := h.authService.VerifyEmail(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrTokenInvalidOrExpired) {
			response.Error(c, domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeTokenInvalid, "Invalid or expired verification token", err))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Email verified successfully",
		"user":    user,
	})
}

// GetProfile returns the authenticated user
// GET /api/v1/auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
