package repositories

import (
	"context"

	"github.com/google/uuid"
	"dye-kulture.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	MarkVerified(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

// VerificationTokenRepository defines verification token operations.
// GetValid applies lazy expiry: a stored token whose expiry has passed is
// treated as absent.
type VerificationTokenRepository interface {
	Create(ctx context.Context, userID uuid.UUID, token string) (*entities.VerificationToken, error)
	GetValid(ctx context.Context, token string) (*entities.VerificationToken, error)
	Delete(ctx context.Context, token string) error
}
