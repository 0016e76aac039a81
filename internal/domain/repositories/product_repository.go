package repositories

import (
	"context"

	"github.com/google/uuid"
	"dye-kulture.backend/internal/domain/entities"
)

// ProductRepository defines read-only catalog operations
type ProductRepository interface {
	List(ctx context.Context) ([]*entities.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*entities.Product, error)
	Search(ctx context.Context, query string) ([]*entities.Product, error)
}
