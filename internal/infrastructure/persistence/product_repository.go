package persistence

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/spyshark/backend/internal/domain/shared"
	"github.com/spyshark/backend/internal/domain/storefront"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements storefront.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByShop returns all products for a shop
func (r *GormProductRepository) FindByShop(ctx context.Context, shopName string) ([]storefront.Product, error) {
	var products []storefront.Product
	if err := r.db.WithContext(ctx).
		Where("shop_name = ?", shopName).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByShopAndProductIDs returns the shop's products whose external IDs are in the given set
func (r *GormProductRepository) FindByShopAndProductIDs(ctx context.Context, shopName string, productIDs []string) ([]storefront.Product, error) {
	if len(productIDs) == 0 {
		return []storefront.Product{}, nil
	}
	var products []storefront.Product
	if err := r.db.WithContext(ctx).
		Where("shop_name = ? AND product_id IN ?", shopName, productIDs).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProfit overwrites margin, net profit, and the variant list of the
// product with the given external ID
func (r *GormProductRepository) UpdateProfit(ctx context.Context, productID string, margin, netProfit decimal.Decimal, variants storefront.VariantList) error {
	result := r.db.WithContext(ctx).
		Model(&storefront.Product{}).
		Where("product_id = ?", productID).
		Updates(map[string]any{
			"margin":     margin,
			"net_profit": netProfit,
			"variants":   variants,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// UpdateVariant overwrites one variant of the product with the given external ID
func (r *GormProductRepository) UpdateVariant(ctx context.Context, productID string, variant storefront.Variant) error {
	var product storefront.Product
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrNotFound
		}
		return err
	}

	replaced := false
	for i := range product.Variants {
		if product.Variants[i].VariantID == variant.VariantID {
			product.Variants[i] = variant
			replaced = true
			break
		}
	}
	if !replaced {
		return shared.ErrNotFound
	}

	return r.db.WithContext(ctx).
		Model(&storefront.Product{}).
		Where("product_id = ?", productID).
		Update("variants", product.Variants).Error
}

// Insert persists the product unless (shop, product_id) already exists
func (r *GormProductRepository) Insert(ctx context.Context, product *storefront.Product) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shop_name"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(product)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

var _ storefront.ProductRepository = (*GormProductRepository)(nil)
