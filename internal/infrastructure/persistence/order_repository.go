package persistence

import (
	"context"
	"time"

	"github.com/spyshark/backend/internal/domain/storefront"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements storefront.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByShop returns all orders for a shop, most recent first
func (r *GormOrderRepository) FindByShop(ctx context.Context, shopName string) ([]storefront.Order, error) {
	var orders []storefront.Order
	if err := r.db.WithContext(ctx).
		Where("shop_name = ?", shopName).
		Order("placed_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByShopSince returns orders placed at or after the given floor, most recent first
func (r *GormOrderRepository) FindByShopSince(ctx context.Context, shopName string, since time.Time) ([]storefront.Order, error) {
	var orders []storefront.Order
	if err := r.db.WithContext(ctx).
		Where("shop_name = ? AND placed_at >= ?", shopName, since).
		Order("placed_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Insert persists the order unless its external order ID already exists.
// The unique index on order_id makes concurrent syncs safe: the insert
// either lands or is silently skipped, never duplicated.
func (r *GormOrderRepository) Insert(ctx context.Context, order *storefront.Order) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoNothing: true,
		}).
		Create(order)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

var _ storefront.OrderRepository = (*GormOrderRepository)(nil)
