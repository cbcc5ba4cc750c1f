package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spyshark/backend/internal/infrastructure/logger"
	"github.com/spyshark/backend/internal/infrastructure/traffic"
	"github.com/spyshark/backend/internal/interfaces/http/dto"
)

// TrafficHandler proxies domain traffic lookups to the external
// traffic-data provider
type TrafficHandler struct {
	BaseHandler
	client *traffic.Client
}

// NewTrafficHandler creates a new TrafficHandler
func NewTrafficHandler(client *traffic.Client) *TrafficHandler {
	return &TrafficHandler{client: client}
}

// RegisterRoutes registers traffic routes
func (h *TrafficHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/traffic", h.GetDomainStats)
}

// GetDomainStats fetches traffic statistics for a domain and passes the
// provider's JSON body through unchanged
func (h *TrafficHandler) GetDomainStats(c *gin.Context) {
	domain := c.Query("domain")
	if domain == "" {
		h.BadRequest(c, "domain parameter is required")
		return
	}

	stats, err := h.client.FetchDomainStats(c.Request.Context(), domain)
	if err != nil {
		logger.GetGinLogger(c).Error("traffic lookup failed",
			zap.String("domain", domain),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.NewMessageResponse("Failed to fetch traffic data"))
		return
	}

	c.Data(http.StatusOK, "application/json", stats)
}
