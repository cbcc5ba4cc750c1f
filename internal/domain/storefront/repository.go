package storefront

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderRepository defines persistence operations for cached orders
type OrderRepository interface {
	// FindByShop returns all orders for a shop, most recent first
	FindByShop(ctx context.Context, shopName string) ([]Order, error)
	// FindByShopSince returns orders placed at or after the given floor,
	// most recent first
	FindByShopSince(ctx context.Context, shopName string, since time.Time) ([]Order, error)
	// Insert persists the order unless its OrderID already exists.
	// Returns true when a row was actually inserted.
	Insert(ctx context.Context, order *Order) (bool, error)
}

// ProductRepository defines persistence operations for cached products
type ProductRepository interface {
	// FindByShop returns all products for a shop
	FindByShop(ctx context.Context, shopName string) ([]Product, error)
	// FindByShopAndProductIDs returns the shop's products whose external
	// IDs are in the given set
	FindByShopAndProductIDs(ctx context.Context, shopName string, productIDs []string) ([]Product, error)
	// UpdateProfit overwrites margin, net profit, and the variant list of
	// the product with the given external ID. Returns shared.ErrNotFound
	// when no product matches.
	UpdateProfit(ctx context.Context, productID string, margin, netProfit decimal.Decimal, variants VariantList) error
	// UpdateVariant overwrites one variant of the product with the given
	// external ID. Returns shared.ErrNotFound when the product or the
	// variant does not exist.
	UpdateVariant(ctx context.Context, productID string, variant Variant) error
	// Insert persists the product unless (shop, product_id) already
	// exists. Returns true when a row was actually inserted.
	Insert(ctx context.Context, product *Product) (bool, error)
}

// ShopRepository defines persistence operations for connected shops
type ShopRepository interface {
	// FindByUser returns all shops connected by a user
	FindByUser(ctx context.Context, userName string) ([]Shop, error)
	// FindByName returns the shop with the given name, or shared.ErrNotFound
	FindByName(ctx context.Context, shopName string) (*Shop, error)
	// Save persists a shop record
	Save(ctx context.Context, shop *Shop) error
}
