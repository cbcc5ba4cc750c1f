package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/spyshark/backend/internal/domain/storefront"
)

// MockOrderRepository implements storefront.OrderRepository for testing
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByShop(ctx context.Context, shopName string) ([]storefront.Order, error) {
	args := m.Called(ctx, shopName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storefront.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByShopSince(ctx context.Context, shopName string, since time.Time) ([]storefront.Order, error) {
	args := m.Called(ctx, shopName, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storefront.Order), args.Error(1)
}

func (m *MockOrderRepository) Insert(ctx context.Context, order *storefront.Order) (bool, error) {
	args := m.Called(ctx, order)
	return args.Bool(0), args.Error(1)
}

// MockProductRepository implements storefront.ProductRepository for testing
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByShop(ctx context.Context, shopName string) ([]storefront.Product, error) {
	args := m.Called(ctx, shopName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storefront.Product), args.Error(1)
}

func (m *MockProductRepository) FindByShopAndProductIDs(ctx context.Context, shopName string, productIDs []string) ([]storefront.Product, error) {
	args := m.Called(ctx, shopName, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storefront.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProfit(ctx context.Context, productID string, margin, netProfit decimal.Decimal, variants storefront.VariantList) error {
	args := m.Called(ctx, productID, margin, netProfit, variants)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateVariant(ctx context.Context, productID string, variant storefront.Variant) error {
	args := m.Called(ctx, productID, variant)
	return args.Error(0)
}

func (m *MockProductRepository) Insert(ctx context.Context, product *storefront.Product) (bool, error) {
	args := m.Called(ctx, product)
	return args.Bool(0), args.Error(1)
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fixtureProduct is a product with one variant priced 10, product-level
// net profit 3 and margin 5, variant-level margin 0
func fixtureProduct() storefront.Product {
	return storefront.Product{
		ShopName:  "gadget-store",
		ProductID: "101",
		Name:      "Widget",
		Price:     dec("10"),
		Margin:    dec("5"),
		NetProfit: dec("3"),
		Image:     "https://cdn.example.com/widget.png",
		Variants: storefront.VariantList{
			{VariantID: "201", Name: "Red", Price: dec("10"), Margin: dec("0"), NetProfit: dec("0")},
		},
	}
}

func fixtureOrder(orderID string, placedAt time.Time, discountPct int, items ...storefront.LineItem) storefront.Order {
	quantity := 0
	for _, item := range items {
		quantity += item.Quantity
	}
	return storefront.Order{
		ShopName:           "gadget-store",
		OrderID:            orderID,
		CustomerEmail:      "buyer@example.com",
		PlacedAt:           placedAt,
		Quantity:           quantity,
		FinancialStatus:    "PAID",
		DiscountPercentage: discountPct,
		LineItems:          items,
	}
}
