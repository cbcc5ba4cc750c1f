package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/spyshark/backend/internal/application/analytics"
)

// AnalyticsHandler handles profit aggregation and order listing endpoints
type AnalyticsHandler struct {
	BaseHandler
	profitService *analytics.ProfitService
	ordersService *analytics.OrdersService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(profitService *analytics.ProfitService, ordersService *analytics.OrdersService) *AnalyticsHandler {
	return &AnalyticsHandler{
		profitService: profitService,
		ordersService: ordersService,
	}
}

// RegisterRoutes registers analytics routes
func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/getShopTotalProfit", h.GetShopTotalProfit)
	rg.POST("/getOrders", h.GetOrders)
}

// GetShopTotalProfit returns the shop's profit and revenue over the
// requested window, compared against the preceding window
func (h *AnalyticsHandler) GetShopTotalProfit(c *gin.Context) {
	shopName := c.Query("shopName")
	days := c.Query("days")

	result, err := h.profitService.ComputeShopProfit(c.Request.Context(), shopName, days)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, result)
}

// GetOrders returns the shop's orders enriched with catalog details
func (h *AnalyticsHandler) GetOrders(c *gin.Context) {
	shopName := c.Query("shopName")

	orders, err := h.ordersService.OrdersWithProducts(c.Request.Context(), shopName)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, orders)
}
