package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spyshark/backend/internal/application/catalog"
	"github.com/spyshark/backend/internal/domain/shared"
	"github.com/spyshark/backend/internal/domain/storefront"
)

func TestProductHandler_GetProducts(t *testing.T) {
	t.Run("rejects missing shop name", func(t *testing.T) {
		engine := newTestEngine(NewProductHandler(catalog.NewProductService(new(MockProductRepository), zap.NewNop())))

		w := performRequest(engine, http.MethodGet, "/api/getProducts", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"shopName is required and must be a string"}`, w.Body.String())
	})

	t.Run("wraps the shop's products", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		productRepo.On("FindByShop", mock.Anything, "demo-shop").
			Return([]storefront.Product{{ShopName: "demo-shop", ProductID: "101", Name: "Mug", Price: mustDecimal("10")}}, nil)

		engine := newTestEngine(NewProductHandler(catalog.NewProductService(productRepo, zap.NewNop())))

		w := performRequest(engine, http.MethodGet, "/api/getProducts?shopName=demo-shop", "")

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Contains(t, body, "products")

		var products []map[string]any
		require.NoError(t, json.Unmarshal(body["products"], &products))
		require.Len(t, products, 1)
		assert.Equal(t, "101", products[0]["product_id"])
	})
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	t.Run("rejects a body without productId", func(t *testing.T) {
		engine := newTestEngine(NewProductHandler(catalog.NewProductService(new(MockProductRepository), zap.NewNop())))

		w := performRequest(engine, http.MethodPut, "/api/updateProduct", `{"updatedProduct":{"margin":5}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Invalid request data"}`, w.Body.String())
	})

	t.Run("persists the update", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		productRepo.On("UpdateProfit", mock.Anything, "101",
			decimal.NewFromFloat(5), decimal.NewFromFloat(3),
			storefront.VariantList{{VariantID: "201", Name: "Red", Price: decimal.NewFromFloat(10), Margin: decimal.NewFromFloat(2), NetProfit: decimal.NewFromFloat(1)}},
		).Return(nil)

		engine := newTestEngine(NewProductHandler(catalog.NewProductService(productRepo, zap.NewNop())))

		body := `{"productId":"101","updatedProduct":{"margin":5,"net_profit":3,"variants":[{"variant_id":"201","name":"Red","price":10,"margin":2,"net_profit":1}]}}`
		w := performRequest(engine, http.MethodPut, "/api/updateProduct", body)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Product updated successfully"}`, w.Body.String())
		productRepo.AssertExpectations(t)
	})

	t.Run("returns 404 when no product matches", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		productRepo.On("UpdateProfit", mock.Anything, "999", mock.Anything, mock.Anything, mock.Anything).
			Return(shared.ErrNotFound)

		engine := newTestEngine(NewProductHandler(catalog.NewProductService(productRepo, zap.NewNop())))

		w := performRequest(engine, http.MethodPut, "/api/updateProduct",
			`{"productId":"999","updatedProduct":{"margin":5,"net_profit":3}}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Product not found"}`, w.Body.String())
	})
}

func TestProductHandler_UpdateVariant(t *testing.T) {
	t.Run("rejects a body without variant", func(t *testing.T) {
		engine := newTestEngine(NewProductHandler(catalog.NewProductService(new(MockProductRepository), zap.NewNop())))

		w := performRequest(engine, http.MethodPut, "/api/updateVariant", `{"productId":"101"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Invalid request data"}`, w.Body.String())
	})

	t.Run("persists the variant", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		productRepo.On("UpdateVariant", mock.Anything, "101",
			storefront.Variant{VariantID: "201", Name: "Blue", Price: decimal.NewFromFloat(12), Margin: decimal.NewFromFloat(4), NetProfit: decimal.NewFromFloat(2)},
		).Return(nil)

		engine := newTestEngine(NewProductHandler(catalog.NewProductService(productRepo, zap.NewNop())))

		body := `{"productId":"101","variant":{"variant_id":"201","name":"Blue","price":12,"margin":4,"net_profit":2}}`
		w := performRequest(engine, http.MethodPut, "/api/updateVariant", body)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Variant updated successfully"}`, w.Body.String())
		productRepo.AssertExpectations(t)
	})

	t.Run("returns 404 when the variant does not exist", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		productRepo.On("UpdateVariant", mock.Anything, "101", mock.Anything).Return(shared.ErrNotFound)

		engine := newTestEngine(NewProductHandler(catalog.NewProductService(productRepo, zap.NewNop())))

		w := performRequest(engine, http.MethodPut, "/api/updateVariant",
			`{"productId":"101","variant":{"variant_id":"999"}}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Product or Variant not found"}`, w.Body.String())
	})
}
