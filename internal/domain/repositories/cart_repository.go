package repositories

import (
	"context"

	"github.com/google/uuid"
	"dye-kulture.backend/internal/domain/entities"
)

// CartRepository defines cart line operations. AddItem and UpdateQuantity
// must each mutate with a single atomic statement so concurrent requests on
// the same (user, product) line cannot lose updates.
type CartRepository interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entities.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entities.CartLine, error)
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.CartLine, error)
}
