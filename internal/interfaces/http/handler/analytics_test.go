package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spyshark/backend/internal/application/analytics"
	"github.com/spyshark/backend/internal/domain/shared"
	"github.com/spyshark/backend/internal/domain/storefront"
)

func analyticsFixtureProduct() storefront.Product {
	return storefront.Product{
		ShopName:  "demo-shop",
		ProductID: "101",
		Name:      "Mug",
		Price:     mustDecimal("10"),
		Margin:    mustDecimal("5"),
		NetProfit: mustDecimal("3"),
		Variants: storefront.VariantList{
			{VariantID: "201", Name: "Red", Price: mustDecimal("10")},
		},
	}
}

func analyticsFixtureOrder(orderID string) storefront.Order {
	return storefront.Order{
		ShopName:        "demo-shop",
		OrderID:         orderID,
		CustomerEmail:   "buyer@example.com",
		PlacedAt:        time.Date(2023, 6, 10, 9, 0, 0, 0, time.UTC),
		Quantity:        2,
		FinancialStatus: "PAID",
		LineItems: storefront.LineItemList{
			{ProductID: "101", VariantID: "201", Quantity: 2},
		},
	}
}

func TestAnalyticsHandler_GetShopTotalProfit(t *testing.T) {
	t.Run("rejects missing shop name", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		h := NewAnalyticsHandler(
			analytics.NewProfitService(orderRepo, productRepo, zap.NewNop()),
			analytics.NewOrdersService(orderRepo, productRepo, zap.NewNop()),
		)
		engine := newTestEngine(h)

		w := performRequest(engine, http.MethodGet, "/api/getShopTotalProfit?days=7", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Shop name is required and must be a string"}`, w.Body.String())
	})

	t.Run("rejects invalid days", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		h := NewAnalyticsHandler(
			analytics.NewProfitService(orderRepo, productRepo, zap.NewNop()),
			analytics.NewOrdersService(orderRepo, productRepo, zap.NewNop()),
		)
		engine := newTestEngine(h)

		w := performRequest(engine, http.MethodGet, "/api/getShopTotalProfit?shopName=demo-shop&days=14", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid days parameter")
	})

	t.Run("returns 404 when the window has no orders", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		orderRepo.On("FindByShop", mock.Anything, "demo-shop").Return([]storefront.Order{}, nil)

		h := NewAnalyticsHandler(
			analytics.NewProfitService(orderRepo, productRepo, zap.NewNop()),
			analytics.NewOrdersService(orderRepo, productRepo, zap.NewNop()),
		)
		engine := newTestEngine(h)

		w := performRequest(engine, http.MethodGet, "/api/getShopTotalProfit?shopName=demo-shop&days=all", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"No orders found for the given shop and date range."}`, w.Body.String())
	})

	t.Run("returns aggregated totals", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		orderRepo.On("FindByShop", mock.Anything, "demo-shop").
			Return([]storefront.Order{analyticsFixtureOrder("5001")}, nil).Twice()
		productRepo.On("FindByShopAndProductIDs", mock.Anything, "demo-shop", []string{"101"}).
			Return([]storefront.Product{analyticsFixtureProduct()}, nil)

		h := NewAnalyticsHandler(
			analytics.NewProfitService(orderRepo, productRepo, zap.NewNop()),
			analytics.NewOrdersService(orderRepo, productRepo, zap.NewNop()),
		)
		engine := newTestEngine(h)

		w := performRequest(engine, http.MethodGet, "/api/getShopTotalProfit?shopName=demo-shop&days=all", "")

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 20.0, body["total_revenue"])
		assert.Equal(t, 6.0, body["total_profit"])
		assert.Equal(t, "no change", body["comparison_status"])
		assert.Equal(t, "0.00", body["percentage_change"])
	})
}

func TestAnalyticsHandler_GetOrders(t *testing.T) {
	t.Run("rejects missing shop name", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		h := NewAnalyticsHandler(
			analytics.NewProfitService(orderRepo, productRepo, zap.NewNop()),
			analytics.NewOrdersService(orderRepo, productRepo, zap.NewNop()),
		)
		engine := newTestEngine(h)

		w := performRequest(engine, http.MethodPost, "/api/getOrders", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Shop name is required and must be a string"}`, w.Body.String())
	})

	t.Run("returns enriched orders", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		orderRepo.On("FindByShop", mock.Anything, "demo-shop").
			Return([]storefront.Order{analyticsFixtureOrder("5001")}, nil)
		productRepo.On("FindByShopAndProductIDs", mock.Anything, "demo-shop", []string{"101"}).
			Return([]storefront.Product{analyticsFixtureProduct()}, nil)

		h := NewAnalyticsHandler(
			analytics.NewProfitService(orderRepo, productRepo, zap.NewNop()),
			analytics.NewOrdersService(orderRepo, productRepo, zap.NewNop()),
		)
		engine := newTestEngine(h)

		w := performRequest(engine, http.MethodPost, "/api/getOrders?shopName=demo-shop", "")

		require.Equal(t, http.StatusOK, w.Code)

		var body []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "5001", body[0]["order_id"])
		assert.Equal(t, 20.0, body[0]["total_order_price"])
		assert.Equal(t, 6.0, body[0]["total_order_net_profit"])
	})

	t.Run("collapses repository failures to a generic 500", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		orderRepo.On("FindByShop", mock.Anything, "demo-shop").
			Return(nil, shared.ErrPersistence)

		h := NewAnalyticsHandler(
			analytics.NewProfitService(orderRepo, productRepo, zap.NewNop()),
			analytics.NewOrdersService(orderRepo, productRepo, zap.NewNop()),
		)
		engine := newTestEngine(h)

		w := performRequest(engine, http.MethodPost, "/api/getOrders?shopName=demo-shop", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
