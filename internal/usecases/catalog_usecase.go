package usecases

import (
	"context"

	"github.com/google/uuid"
	"dye-kulture.backend/internal/domain/entities"
	"dye-kulture.backend/internal/domain/repositories"
)

// CatalogUsecase exposes read-only product browsing
type CatalogUsecase struct {
	productRepo repositories.ProductRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(productRepo repositories.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{productRepo: productRepo}
}

// List returns all products, newest first
func (u *CatalogUsecase) List(ctx context.Context) ([]*entities.Product, error) {
	return u.productRepo.List(ctx)
}

// Get returns a single product by ID
func (u *CatalogUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

// ListByCategory returns products in a category, matched case-insensitively
func (u *CatalogUsecase) ListByCategory(ctx context.Context, category string) ([]*entities.Product, error) {
	return u.productRepo.ListByCategory(ctx, category)
}

// Search returns products whose name or description contains the query
func (u *CatalogUsecase) Search(ctx context.Context, query string) ([]*entities.Product, error) {
	return u.productRepo.Search(ctx, query)
}
