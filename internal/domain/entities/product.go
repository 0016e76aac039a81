package entities

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog entry. The catalog is read-only in this
// service; products are seeded out of band.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	CreatedAt   time.Time `json:"createdAt"`
}
