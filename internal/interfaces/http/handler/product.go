package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spyshark/backend/internal/application/catalog"
	"github.com/spyshark/backend/internal/domain/shared"
	"github.com/spyshark/backend/internal/interfaces/http/dto"
)

// ProductHandler handles catalog listing and manual profit edits
type ProductHandler struct {
	BaseHandler
	productService *catalog.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalog.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/getProducts", h.GetProducts)
	rg.PUT("/updateProduct", h.UpdateProduct)
	rg.PUT("/updateVariant", h.UpdateVariant)
}

// GetProducts returns all cached products of a shop
func (h *ProductHandler) GetProducts(c *gin.Context) {
	shopName := c.Query("shopName")
	if shopName == "" {
		h.BadRequest(c, "shopName is required and must be a string")
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), shopName)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.ProductListResponse{Products: products})
}

// UpdateProduct overwrites a product's margin, net profit, and variant list
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request data")
		return
	}

	if err := h.productService.UpdateProduct(c.Request.Context(), req.ProductID, *req.UpdatedProduct); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewMessageResponse("Product not found"))
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Message(c, "Product updated successfully")
}

// UpdateVariant overwrites one variant of a product
func (h *ProductHandler) UpdateVariant(c *gin.Context) {
	var req dto.UpdateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request data")
		return
	}

	if err := h.productService.UpdateVariant(c.Request.Context(), req.ProductID, *req.Variant); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewMessageResponse("Product or Variant not found"))
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Message(c, "Variant updated successfully")
}
