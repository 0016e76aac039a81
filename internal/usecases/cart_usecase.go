package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"dye-kulture.backend/internal/domain/entities"
	domainerrors "dye-kulture.backend/internal/domain/errors"
	"dye-kulture.backend/internal/domain/repositories"
)

// CartUsecase handles cart mutations and reads
type CartUsecase struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartUsecase creates a new cart usecase
func NewCartUsecase(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Add merges quantity into an existing (user, product) line or creates one.
// Quantity defaults to 1 and the product must exist in the catalog.
func (u *CartUsecase) Add(ctx context.Context, userID uuid.UUID, input *entities.AddToCartInput) (*entities.CartLine, error) {
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	if _, err := u.productRepo.GetByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		return nil, err
	}

	return u.cartRepo.AddItem(ctx, userID, input.ProductID, quantity)
}

// UpdateQuantity replaces a line's quantity. Quantity must be at least 1
// and the line must already exist.
func (u *CartUsecase) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entities.CartLine, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}
	return u.cartRepo.UpdateQuantity(ctx, userID, productID, quantity)
}

// Remove deletes a line; removing an absent line succeeds
func (u *CartUsecase) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return u.cartRepo.Remove(ctx, userID, productID)
}

// Clear empties the user's cart
func (u *CartUsecase) Clear(ctx context.Context, userID uuid.UUID) error {
	return u.cartRepo.Clear(ctx, userID)
}

// List returns the user's cart lines with their catalog projections
func (u *CartUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.CartLine, error) {
	return u.cartRepo.ListByUser(ctx, userID)
}
