package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"dye-kulture.backend/internal/domain/entities"
	domainerrors "dye-kulture.backend/internal/domain/errors"
	"dye-kulture.backend/internal/infrastructure/models"
)

// tokenTTL is the fixed verification window
const tokenTTL = 24 * time.Hour

// VerificationTokenRepository implements verification token operations
type VerificationTokenRepository struct {
	db *gorm.DB
}

// NewVerificationTokenRepository creates a new verification token repository
func NewVerificationTokenRepository(db *gorm.DB) *VerificationTokenRepository {
	return &VerificationTokenRepository{db: db}
}

// Create issues a new token for the user, expiring 24h from now
func (r *VerificationTokenRepository) Create(ctx context.Context, userID uuid.UUID, token string) (*entities.VerificationToken, error) {
	m := &models.VerificationToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(tokenTTL),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return tokenToEntity(m), nil
}

// GetValid returns the token row if it matches and has not expired.
// Expired rows are treated as absent; no sweep process deletes them.
func (r *VerificationTokenRepository) GetValid(ctx context.Context, token string) (*entities.VerificationToken, error) {
	var m models.VerificationToken
	err := r.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, time.Now()).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return tokenToEntity(&m), nil
}

// Delete consumes a token so it cannot be replayed. Deleting an absent
// token is not an error.
func (r *VerificationTokenRepository) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&models.VerificationToken{}).Error
}

func tokenToEntity(m *models.VerificationToken) *entities.VerificationToken {
	return &entities.VerificationToken{
		ID:        m.ID,
		UserID:    m.UserID,
		Token:     m.Token,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}
