package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"dye-kulture.backend/internal/domain/entities"
	domainerrors "dye-kulture.backend/internal/domain/errors"
	"dye-kulture.backend/internal/interfaces/http/response"
)

// CatalogService is the catalog usecase surface consumed by the handler
type CatalogService interface {
	List(ctx context.Context) ([]*entities.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*entities.Product, error)
	Search(ctx context.Context, query string) ([]*entities.Product, error)
}

// ProductHandler handles public catalog endpoints
type ProductHandler struct {
	catalogService CatalogService
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogService CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// GetAllProducts lists the catalog, newest first
// GET /api/v1/products
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}

// GetProductByID returns a single product
// GET /api/v1/products/:id
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid product id"))
		return
	}

	product, err := h.catalogService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Product not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

// GetProductsByCategory lists products in a category
// GET /api/v1/products/category/:category
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	products, err := h.catalogService.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}

// SearchProducts searches name and description
// GET /api/v1/products/search?q=
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.Error(c, domainerrors.BadRequest("Search query is required"))
		return
	}

	products, err := h.catalogService.Search(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}
