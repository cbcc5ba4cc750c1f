package dto

import "github.com/spyshark/backend/internal/domain/storefront"

// MessageResponse is the flat `{message}` body used by write endpoints and
// by all error responses
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a message response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// OrderSyncResponse reports an order sync run
type OrderSyncResponse struct {
	Message       string   `json:"message"`
	AddedCount    int      `json:"addedCount"`
	AddedOrderIDs []string `json:"addedOrderIds"`
}

// ProductListResponse wraps a shop's cached products
type ProductListResponse struct {
	Products []storefront.Product `json:"products"`
}

// ShopSummary is one connected shop in the shops listing
type ShopSummary struct {
	ShopName    string `json:"shopName"`
	ShopDomain  string `json:"shopDomain"`
	AccessToken string `json:"accessToken"`
}

// ShopListResponse wraps a user's connected shops
type ShopListResponse struct {
	UserName string        `json:"userName"`
	Shops    []ShopSummary `json:"shops"`
}

// NewShopListResponse maps shop records into the listing shape
func NewShopListResponse(userName string, shops []storefront.Shop) ShopListResponse {
	summaries := make([]ShopSummary, 0, len(shops))
	for _, s := range shops {
		summaries = append(summaries, ShopSummary{
			ShopName:    s.ShopName,
			ShopDomain:  s.ShopDomain,
			AccessToken: s.AccessToken,
		})
	}
	return ShopListResponse{UserName: userName, Shops: summaries}
}
