package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"dye-kulture.backend/internal/domain/entities"
	domainerrors "dye-kulture.backend/internal/domain/errors"
	"dye-kulture.backend/internal/infrastructure/models"
)

// ProductRepository implements read-only catalog operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns all products, newest first
func (r *ProductRepository) List(ctx context.Context) ([]*entities.Product, error) {
	var productModels []models.Product
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}
	return productsToEntities(productModels), nil
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return productToEntity(&m), nil
}

// ListByCategory returns products whose category matches case-insensitively
func (r *ProductRepository) ListByCategory(ctx context.Context, category string) ([]*entities.Product, error) {
	var productModels []models.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(category) = LOWER(?)", category).
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}
	return productsToEntities(productModels), nil
}

// Search returns products whose name or description contains the query,
// case-insensitively, newest first
func (r *ProductRepository) Search(ctx context.Context, query string) ([]*entities.Product, error) {
	var productModels []models.Product
	searchTerm := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", searchTerm, searchTerm).
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}
	return productsToEntities(productModels), nil
}

func productToEntity(m *models.Product) *entities.Product {
	return &entities.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		ImageURL:    m.ImageURL,
		Category:    m.Category,
		Rating:      m.Rating,
		ReviewCount: m.ReviewCount,
		CreatedAt:   m.CreatedAt,
	}
}

func productsToEntities(productModels []models.Product) []*entities.Product {
	products := make([]*entities.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, productToEntity(&productModels[i]))
	}
	return products
}
