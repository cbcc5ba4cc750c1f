package dto

import "github.com/spyshark/backend/internal/application/catalog"

// CredentialsRequest is the body of the sync endpoints
type CredentialsRequest struct {
	ShopName    string `json:"shopName" binding:"required"`
	AccessToken string `json:"accessToken" binding:"required"`
}

// UpdateProductRequest is the body of the product update endpoint.
// UpdatedProduct is a pointer so `required` checks presence, not zeroness.
type UpdateProductRequest struct {
	ProductID      string                        `json:"productId" binding:"required"`
	UpdatedProduct *catalog.UpdateProductRequest `json:"updatedProduct" binding:"required"`
}

// UpdateVariantRequest is the body of the variant update endpoint
type UpdateVariantRequest struct {
	ProductID string                 `json:"productId" binding:"required"`
	Variant   *catalog.VariantUpdate `json:"variant" binding:"required"`
}
