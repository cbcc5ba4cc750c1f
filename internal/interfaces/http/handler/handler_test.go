package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/spyshark/backend/internal/domain/integration"
	"github.com/spyshark/backend/internal/domain/storefront"
	"github.com/spyshark/backend/internal/interfaces/http/router"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestEngine wires a registrar under the /api group the way the server does
func newTestEngine(registrar router.RouteRegistrar) *gin.Engine {
	engine := gin.New()
	router.NewRouter(engine).Register(registrar).Setup()
	return engine
}

func performRequest(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

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

type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) FindByUser(ctx context.Context, userName string) ([]storefront.Shop, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storefront.Shop), args.Error(1)
}

func (m *MockShopRepository) FindByName(ctx context.Context, shopName string) (*storefront.Shop, error) {
	args := m.Called(ctx, shopName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.Shop), args.Error(1)
}

func (m *MockShopRepository) Save(ctx context.Context, shop *storefront.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

type MockStorefrontPlatform struct {
	mock.Mock
}

func (m *MockStorefrontPlatform) PullOrders(ctx context.Context, creds integration.Credentials) ([]integration.PlatformOrder, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]integration.PlatformOrder), args.Error(1)
}

func (m *MockStorefrontPlatform) PullProducts(ctx context.Context, creds integration.Credentials) ([]integration.PlatformProduct, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]integration.PlatformProduct), args.Error(1)
}

func (m *MockStorefrontPlatform) ShopCurrency(ctx context.Context, creds integration.Credentials) (string, error) {
	args := m.Called(ctx, creds)
	return args.String(0), args.Error(1)
}

type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) RateToUSD(ctx context.Context, currency string) (decimal.Decimal, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
