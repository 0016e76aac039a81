package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"dye-kulture.backend/internal/domain/entities"
	domainerrors "dye-kulture.backend/internal/domain/errors"
	"dye-kulture.backend/internal/domain/repositories"
	"dye-kulture.backend/pkg/crypto"
	"dye-kulture.backend/pkg/jwt"
	"dye-kulture.backend/pkg/logger"
)

// EmailNotifier delivers the verification token out of band. Delivery
// failures never fail the registration that triggered them.
type EmailNotifier interface {
	Notify(ctx context.Context, email, token string) error
}

const notifyTimeout = 15 * time.Second

// AuthUsecase handles registration, verification and login
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	tokenRepo  repositories.VerificationTokenRepository
	notifier   EmailNotifier
	jwtService *jwt.JWTService
	bcryptCost int
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	tokenRepo repositories.VerificationTokenRepository,
	notifier EmailNotifier,
	jwtService *jwt.JWTService,
	bcryptCost int,
) *AuthUsecase {
	if bcryptCost <= 0 {
		bcryptCost = crypto.DefaultCost
	}
	return &AuthUsecase{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		notifier:   notifier,
		jwtService: jwtService,
		bcryptCost: bcryptCost,
	}
}

// Register creates an unverified user, issues a verification token and a
// session token. The verification email is sent best-effort in the
// background; a failed send is logged and never rolls back the user.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrEmailTaken
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPasswordWithCost(input.Password, u.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		IsVerified:   false,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokenValue, err := crypto.GenerateVerificationToken()
	if err != nil {
		return nil, err
	}
	if _, err := u.tokenRepo.Create(ctx, user.ID, tokenValue); err != nil {
		return nil, err
	}

	u.sendVerificationEmail(user.Email, tokenValue)

	sessionToken, err := u.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{Token: sessionToken, User: user}, nil
}

// sendVerificationEmail fires the notifier without blocking the request.
func (u *AuthUsecase) sendVerificationEmail(email, token string) {
	if u.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := u.notifier.Notify(ctx, email, token); err != nil {
			logger.Warn(ctx, "verification email delivery failed",
				zap.String("email", email),
				zap.Error(err),
			)
		}
	}()
}

// VerifyEmail consumes a verification token and flips the owner's
// verification flag. The token is deleted so it cannot be replayed.
func (u *AuthUsecase) VerifyEmail(ctx context.Context, token string) (*entities.User, error) {
	verification, err := u.tokenRepo.GetValid(ctx, token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrTokenInvalidOrExpired
		}
		return nil, err
	}

	user, err := u.userRepo.MarkVerified(ctx, verification.UserID)
	if err != nil {
		return nil, err
	}

	if err := u.tokenRepo.Delete(ctx, token); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a session token. Unknown email and
// wrong password produce the same error so accounts cannot be enumerated;
// the verification check runs only after the credentials match.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, domainerrors.ErrEmailNotVerified
	}

	sessionToken, err := u.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{Token: sessionToken, User: user}, nil
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
