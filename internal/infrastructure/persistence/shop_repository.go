package persistence

import (
	"context"
	"errors"

	"github.com/spyshark/backend/internal/domain/shared"
	"github.com/spyshark/backend/internal/domain/storefront"
	"gorm.io/gorm"
)

// GormShopRepository implements storefront.ShopRepository using GORM
type GormShopRepository struct {
	db *gorm.DB
}

// NewGormShopRepository creates a new GormShopRepository
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// FindByUser returns all shops connected by a user
func (r *GormShopRepository) FindByUser(ctx context.Context, userName string) ([]storefront.Shop, error) {
	var shops []storefront.Shop
	if err := r.db.WithContext(ctx).
		Where("user_name = ?", userName).
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// FindByName returns the shop with the given name
func (r *GormShopRepository) FindByName(ctx context.Context, shopName string) (*storefront.Shop, error) {
	var shop storefront.Shop
	if err := r.db.WithContext(ctx).
		Where("shop_name = ?", shopName).
		First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shop, nil
}

// Save persists a shop record
func (r *GormShopRepository) Save(ctx context.Context, shop *storefront.Shop) error {
	return r.db.WithContext(ctx).Save(shop).Error
}

var _ storefront.ShopRepository = (*GormShopRepository)(nil)
