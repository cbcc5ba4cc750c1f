package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spyshark/backend/internal/domain/shared"
	"github.com/spyshark/backend/internal/domain/storefront"
)

func newProfitService(orderRepo *MockOrderRepository, productRepo *MockProductRepository, now time.Time) *ProfitService {
	svc := NewProfitService(orderRepo, productRepo, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func TestProfitService_ComputeShopProfit(t *testing.T) {
	now := time.Date(2023, 6, 15, 14, 30, 0, 0, time.UTC)
	currentFloor := time.Date(2023, 6, 8, 0, 0, 0, 0, time.UTC)
	previousFloor := time.Date(2023, 6, 7, 0, 0, 0, 0, time.UTC)

	t.Run("rejects missing shop name", func(t *testing.T) {
		svc := newProfitService(new(MockOrderRepository), new(MockProductRepository), now)

		_, err := svc.ComputeShopProfit(context.Background(), "", "7")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	})

	t.Run("rejects invalid days parameter", func(t *testing.T) {
		svc := newProfitService(new(MockOrderRepository), new(MockProductRepository), now)

		for _, days := range []string{"", "2", "14", "forever", "-7"} {
			_, err := svc.ComputeShopProfit(context.Background(), "gadget-store", days)

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr, "days=%q", days)
			assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		}
	})

	t.Run("reports not found when the window has no orders", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		orderRepo.On("FindByShopSince", mock.Anything, "gadget-store", currentFloor).
			Return([]storefront.Order{}, nil)

		svc := newProfitService(orderRepo, new(MockProductRepository), now)

		_, err := svc.ComputeShopProfit(context.Background(), "gadget-store", "7")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})

	t.Run("aggregates discounted revenue and profit", func(t *testing.T) {
		// One order: qty 2 at variant price 10, product net profit 3,
		// 10% discount. Undiscounted totals are 20 / 6.
		order := fixtureOrder("5551", now.Add(-24*time.Hour), 10,
			storefront.LineItem{ProductID: "101", VariantID: "201", Quantity: 2})

		orderRepo := new(MockOrderRepository)
		orderRepo.On("FindByShopSince", mock.Anything, "gadget-store", currentFloor).
			Return([]storefront.Order{order}, nil)
		orderRepo.On("FindByShopSince", mock.Anything, "gadget-store", previousFloor).
			Return([]storefront.Order{order}, nil)

		productRepo := new(MockProductRepository)
		productRepo.On("FindByShopAndProductIDs", mock.Anything, "gadget-store", []string{"101"}).
			Return([]storefront.Product{fixtureProduct()}, nil)

		svc := newProfitService(orderRepo, productRepo, now)

		result, err := svc.ComputeShopProfit(context.Background(), "gadget-store", "7")

		require.NoError(t, err)
		assert.InDelta(t, 18.0, result.TotalRevenue, 1e-9)
		assert.InDelta(t, 5.4, result.TotalProfit, 1e-9)
		// Same order lands in both windows, so profit is flat.
		assert.Equal(t, "no change", result.ComparisonStatus)
		assert.Equal(t, "0.00", result.PercentageChange)
		orderRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
	})

	t.Run("zero discount leaves totals untouched", func(t *testing.T) {
		order := fixtureOrder("5551", now.Add(-24*time.Hour), 0,
			storefront.LineItem{ProductID: "101", VariantID: "201", Quantity: 2})

		orderRepo := new(MockOrderRepository)
		orderRepo.On("FindByShopSince", mock.Anything, "gadget-store", currentFloor).
			Return([]storefront.Order{order}, nil)
		orderRepo.On("FindByShopSince", mock.Anything, "gadget-store", previousFloor).
			Return([]storefront.Order{order}, nil)

		productRepo := new(MockProductRepository)
		productRepo.On("FindByShopAndProductIDs", mock.Anything, "gadget-store", []string{"101"}).
			Return([]storefront.Product{fixtureProduct()}, nil)

		svc := newProfitService(orderRepo, productRepo, now)

		result, err := svc.ComputeShopProfit(context.Background(), "gadget-store", "7")

		require.NoError(t, err)
		assert.InDelta(t, 20.0, result.TotalRevenue, 1e-9)
		assert.InDelta(t, 6.0, result.TotalProfit, 1e-9)
	})

	t.Run("variant margin selects variant net profit", func(t *testing.T) {
		product := fixtureProduct()
		product.Variants[0].Margin = dec("4")
		product.Variants[0].NetProfit = dec("7")

		order := fixtureOrder("5551", now.Add(-24*time.Hour), 0,
			storefront.LineItem{ProductID: "101", VariantID: "201", Quantity: 1})

		orderRepo := new(MockOrderRepository)
		orderRepo.On("FindByShopSince", mock.Anything, "gadget-store", currentFloor).
			Return([]storefront.Order{order}, nil)
		orderRepo.On("FindByShopSince", mock.Anything, "gadget-store", previousFloor).
			Return([]storefront.Order{order}, nil)

		productRepo := new(MockProductRepository)
		productRepo.On("FindByShopAndProductIDs", mock.Anything, "gadget-store", []string{"101"}).
			Return([]storefront.Product{product}, nil)

		svc := newProfitService(orderRepo, productRepo, now)

		result, err := svc.ComputeShopProfit(context.Background(), "gadget-store", "7")

		require.NoError(t, err)
		assert.InDelta(t, 7.0, result.TotalProfit, 1e-9)
	})

	t.Run("unresolved order lines contribute nothing", func(t *testing.T) {
		order := fixtureOrder("5551", now.Add(-24*time.Hour), 0,
			storefront.LineItem{ProductID: "101", VariantID: "201", Quantity: 2},
			storefront.LineItem{ProductID: "999", VariantID: "888", Quantity: 5})

		orderRepo := new(MockOrderRepository)
		orderRepo.On("FindByShopSince", mock.Anything, "gadget-store", currentFloor).
			Return([]storefront.Order{order}, nil)
		orderRepo.On("FindByShopSince", mock.Anything, "gadget-store", previousFloor).
			Return([]storefront.Order{order}, nil)

		productRepo := new(MockProductRepository)
		productRepo.On("FindByShopAndProductIDs", mock.Anything, "gadget-store", []string{"101", "999"}).
			Return([]storefront.Product{fixtureProduct()}, nil)

		svc := newProfitService(orderRepo, productRepo, now)

		result, err := svc.ComputeShopProfit(context.Background(), "gadget-store", "7")

		require.NoError(t, err)
		assert.InDelta(t, 20.0, result.TotalRevenue, 1e-9)
		assert.InDelta(t, 6.0, result.TotalProfit, 1e-9)
	})

	t.Run("reports a 100 percent increase over an empty previous period", func(t *testing.T) {
		// Previous-period orders reference a product absent from the
		// current catalog lookup, so their profit is zero.
		current := fixtureOrder("5551", now.Add(-24*time.Hour), 0,
			storefront.LineItem{ProductID: "101", VariantID: "201", Quantity: 2})
		previous := fixtureOrder("5540", now.Add(-170*time.Hour), 0,
			storefront.LineItem{ProductID: "777", VariantID: "666", Quantity: 3})

		orderRepo := new(MockOrderRepository)
		orderRepo.On("FindByShopSince", mock.Anything, "gadget-store", currentFloor).
			Return([]storefront.Order{current}, nil)
		orderRepo.On("FindByShopSince", mock.Anything, "gadget-store", previousFloor).
			Return([]storefront.Order{previous}, nil)

		productRepo := new(MockProductRepository)
		productRepo.On("FindByShopAndProductIDs", mock.Anything, "gadget-store", []string{"101"}).
			Return([]storefront.Product{fixtureProduct()}, nil)

		svc := newProfitService(orderRepo, productRepo, now)

		result, err := svc.ComputeShopProfit(context.Background(), "gadget-store", "7")

		require.NoError(t, err)
		assert.Equal(t, "increased", result.ComparisonStatus)
		assert.Equal(t, "100.00", result.PercentageChange)
	})

	t.Run("all window skips the date floor", func(t *testing.T) {
		order := fixtureOrder("5551", now.AddDate(-2, 0, 0), 0,
			storefront.LineItem{ProductID: "101", VariantID: "201", Quantity: 1})

		orderRepo := new(MockOrderRepository)
		orderRepo.On("FindByShop", mock.Anything, "gadget-store").
			Return([]storefront.Order{order}, nil).Twice()

		productRepo := new(MockProductRepository)
		productRepo.On("FindByShopAndProductIDs", mock.Anything, "gadget-store", []string{"101"}).
			Return([]storefront.Product{fixtureProduct()}, nil)

		svc := newProfitService(orderRepo, productRepo, now)

		result, err := svc.ComputeShopProfit(context.Background(), "gadget-store", "all")

		require.NoError(t, err)
		assert.Equal(t, "no change", result.ComparisonStatus)
		orderRepo.AssertExpectations(t)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		orderRepo.On("FindByShopSince", mock.Anything, "gadget-store", currentFloor).
			Return(nil, errors.New("connection refused"))

		svc := newProfitService(orderRepo, new(MockProductRepository), now)

		_, err := svc.ComputeShopProfit(context.Background(), "gadget-store", "7")

		assert.EqualError(t, err, "connection refused")
	})
}

func TestCompareProfit(t *testing.T) {
	tests := []struct {
		name       string
		current    string
		previous   string
		wantStatus string
		wantChange string
	}{
		{"both zero", "0", "0", "no change", "0.00"},
		{"previous zero", "50", "0", "increased", "100.00"},
		{"increase", "150", "100", "increased", "50.00"},
		{"decrease", "75", "100", "decreased", "25.00"},
		{"equal", "100", "100", "no change", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, change := compareProfit(dec(tt.current), dec(tt.previous))
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantChange, change)
		})
	}
}
