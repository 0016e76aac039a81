package entities

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is one (user, product) line in a cart. Adding the same product
// again merges into the existing line instead of creating a second one.
type CartLine struct {
	UserID    uuid.UUID    `json:"userId"`
	ProductID uuid.UUID    `json:"productId"`
	Quantity  int          `json:"quantity"`
	Product   *ProductInfo `json:"product"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// ProductInfo is the catalog projection joined onto a cart line for display.
// It is nil when the product has since left the catalog.
type ProductInfo struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

// AddToCartInput represents input for adding a product to the cart
type AddToCartInput struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity"`
}

// UpdateCartItemInput represents input for replacing a line's quantity
type UpdateCartItemInput struct {
	Quantity int `json:"quantity" binding:"required"`
}
