package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is keyed by (user_id, product_id); the composite unique index is
// what the merge-add upsert conflicts on.
type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Associations
	Product Product `gorm:"foreignKey:ProductID"`
}
