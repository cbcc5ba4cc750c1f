package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/spyshark/backend/internal/application/shops"
	"github.com/spyshark/backend/internal/interfaces/http/dto"
)

// ShopHandler handles connected-shop listing
type ShopHandler struct {
	BaseHandler
	shopService *shops.ShopService
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(shopService *shops.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// RegisterRoutes registers shop routes
func (h *ShopHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/getShops", h.GetShops)
}

// GetShops returns all shops connected by a user
func (h *ShopHandler) GetShops(c *gin.Context) {
	userName := c.Query("userName")

	result, err := h.shopService.ListShops(c.Request.Context(), userName)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.NewShopListResponse(userName, result))
}
