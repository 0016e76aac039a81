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

// CartService is the cart usecase surface consumed by the handler
type CartService interface {
	Add(ctx context.Context, userID uuid.UUID, input *entities.AddToCartInput) (*entities.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entities.CartLine, error)
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*entities.CartLine, error)
}

// CartHandler handles cart endpoints. All routes require authentication.
type CartHandler struct {
	cartService CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart lists the user's cart lines
// GET /api/v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	lines, err := h.cartService.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, lines)
}

// AddToCart adds a product to the cart, merging into an existing line
// POST /api/v1/cart/add
func (h *CartHandler) AddToCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	line, err := h.cartService.Add(c.Request.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrProductNotFound):
			response.Error(c, domainerrors.NotFound("Product not found"))
		case errors.Is(err, domainerrors.ErrInvalidQuantity):
			response.Error(c, domainerrors.BadRequest("Quantity must be at least 1"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":  "Item added to cart",
		"cartItem": line,
	})
}

// UpdateCartItem replaces a line's quantity
// PUT /api/v1/cart/:productId
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid product id"))
		return
	}

	var input entities.UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Quantity must be at least 1"))
		return
	}

	line, err := h.cartService.UpdateQuantity(c.Request.Context(), userID, productID, input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrInvalidQuantity):
			response.Error(c, domainerrors.BadRequest("Quantity must be at least 1"))
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("Cart item not found"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":  "Cart item updated",
		"cartItem": line,
	})
}

// RemoveFromCart deletes a line; removing an absent line succeeds
// DELETE /api/v1/cart/:productId
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid product id"))
		return
	}

	if err := h.cartService.Remove(c.Request.Context(), userID, productID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Item removed from cart"})
}

// ClearCart empties the user's cart
// DELETE /api/v1/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Cart cleared"})
}
