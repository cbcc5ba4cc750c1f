package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spyshark/backend/internal/domain/shared"
	"github.com/spyshark/backend/internal/infrastructure/logger"
	"github.com/spyshark/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// OK sends a 200 response with the given body
func (h *BaseHandler) OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Message sends a 200 response with a flat `{message}` body
func (h *BaseHandler) Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.NewMessageResponse(message))
}

// BadRequest sends a 400 response with a flat `{message}` body
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewMessageResponse(message))
}

// HandleError maps a domain error to its HTTP status and sends the error
// message as a flat `{message}` body. Anything that is not a DomainError
// is logged and collapsed to a generic 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code), dto.NewMessageResponse(domainErr.Message))
		return
	}

	logger.GetGinLogger(c).Error("unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.NewMessageResponse("Internal server error"))
}
