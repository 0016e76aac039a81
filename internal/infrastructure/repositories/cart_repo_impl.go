package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"dye-kulture.backend/internal/domain/entities"
	domainerrors "dye-kulture.backend/internal/domain/errors"
	"dye-kulture.backend/internal/infrastructure/models"
)

// CartRepository implements cart line operations
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// cartLineRow is the scan target for cart lines joined with their catalog
// projection. The product columns are pointers so an orphaned line scans as
// nil rather than zero values.
type cartLineRow struct {
	UserID       uuid.UUID
	ProductID    uuid.UUID
	Quantity     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ProductName  *string
	ProductPrice *float64
	ProductImage *string
}

// AddItem inserts a new line or merges the quantity into an existing one.
// The merge happens inside a single upsert statement so concurrent adds on
// the same (user, product) pair cannot lose updates.
func (r *CartRepository) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entities.CartLine, error) {
	m := &models.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			// postgres puts both the target table and excluded in scope, so
			// the existing quantity must be table-qualified
			"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
			"updated_at": time.Now(),
		}),
	}).Create(m).Error
	if err != nil {
		return nil, err
	}
	return r.getLine(ctx, userID, productID)
}

// UpdateQuantity replaces the stored quantity with a single conditional
// update. Returns ErrNotFound if no line matches.
func (r *CartRepository) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entities.CartLine, error) {
	result := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.getLine(ctx, userID, productID)
}

// Remove deletes a line; absence is not an error
func (r *CartRepository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

// Clear deletes all lines for the user
func (r *CartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}

// ListByUser returns the user's lines joined with their catalog projection.
// Lines whose product has left the catalog come back with a nil projection.
func (r *CartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.CartLine, error) {
	var rows []cartLineRow
	err := r.lineQuery(ctx).
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	lines := make([]*entities.CartLine, 0, len(rows))
	for i := range rows {
		lines = append(lines, rowToLine(&rows[i]))
	}
	return lines, nil
}

func (r *CartRepository) getLine(ctx context.Context, userID, productID uuid.UUID) (*entities.CartLine, error) {
	var row cartLineRow
	result := r.lineQuery(ctx).
		Where("cart_items.user_id = ? AND cart_items.product_id = ?", userID, productID).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return rowToLine(&row), nil
}

func (r *CartRepository) lineQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.user_id, cart_items.product_id, cart_items.quantity, cart_items.created_at, cart_items.updated_at, " +
			"p.name AS product_name, p.price AS product_price, p.image_url AS product_image").
		Joins("LEFT JOIN products p ON p.id = cart_items.product_id AND p.deleted_at IS NULL")
}

func rowToLine(row *cartLineRow) *entities.CartLine {
	line := &entities.CartLine{
		UserID:    row.UserID,
		ProductID: row.ProductID,
		Quantity:  row.Quantity,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.ProductName != nil {
		info := &entities.ProductInfo{Name: *row.ProductName}
		if row.ProductPrice != nil {
			info.Price = *row.ProductPrice
		}
		if row.ProductImage != nil {
			info.ImageURL = *row.ProductImage
		}
		line.Product = info
	}
	return line
}
