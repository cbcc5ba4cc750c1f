package handler

import (
	"github.com/gin-gonic/gin"

	syncapp "github.com/spyshark/backend/internal/application/sync"
	"github.com/spyshark/backend/internal/domain/integration"
	"github.com/spyshark/backend/internal/interfaces/http/dto"
)

// SyncHandler handles platform pull endpoints
type SyncHandler struct {
	BaseHandler
	orderSync   *syncapp.OrderSyncService
	productSync *syncapp.ProductSyncService
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(orderSync *syncapp.OrderSyncService, productSync *syncapp.ProductSyncService) *SyncHandler {
	return &SyncHandler{
		orderSync:   orderSync,
		productSync: productSync,
	}
}

// RegisterRoutes registers sync routes
func (h *SyncHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shopify := rg.Group("/shopify")
	shopify.POST("/fetchOrders", h.FetchOrders)
	shopify.POST("/fetchProducts", h.FetchProducts)
}

// FetchOrders pulls all orders of the shop from the platform and stores
// the ones not already cached
func (h *SyncHandler) FetchOrders(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "shopName and accessToken are required")
		return
	}

	result, err := h.orderSync.SyncOrders(c.Request.Context(), integration.Credentials{
		ShopName:    req.ShopName,
		AccessToken: req.AccessToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.OrderSyncResponse{
		Message:       "Orders successfully inserted into the database",
		AddedCount:    result.AddedCount,
		AddedOrderIDs: result.AddedOrderIDs,
	})
}

// FetchProducts pulls the shop's catalog from the platform, converts
// prices to USD, and stores products not already cached
func (h *SyncHandler) FetchProducts(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "shopName and accessToken are required")
		return
	}

	if _, err := h.productSync.SyncProducts(c.Request.Context(), integration.Credentials{
		ShopName:    req.ShopName,
		AccessToken: req.AccessToken,
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Message(c, "Products fetched and saved successfully")
}
