package ecommerce

import (
	"errors"
	"fmt"
	"time"
)

// ShopifyConfig holds configuration for the Shopify Admin GraphQL API
type ShopifyConfig struct {
	// OrdersAPIVersion is the Admin API version used for order pulls
	OrdersAPIVersion string
	// ProductsAPIVersion is the Admin API version used for product pulls
	ProductsAPIVersion string
	// PageSize is the number of records requested per GraphQL page
	PageSize int
	// PageDelay is the pause between consecutive page requests
	PageDelay time.Duration
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
	// BaseURLOverride replaces the https://{shop} endpoint root when set.
	// Used by tests to point the adapter at a local server.
	BaseURLOverride string
}

// Errors for Shopify configuration
var (
	ErrShopifyConfigMissingAPIVersion = errors.New("shopify: API version is required")
	ErrShopifyConfigInvalidPageSize   = errors.New("shopify: page size must be between 1 and 250")
)

// NewShopifyConfig creates a new Shopify configuration with defaults
func NewShopifyConfig() *ShopifyConfig {
	return &ShopifyConfig{
		OrdersAPIVersion:   "2023-01",
		ProductsAPIVersion: "2024-07",
		PageSize:           250,
		PageDelay:          500 * time.Millisecond,
		TimeoutSeconds:     30,
	}
}

// Validate validates the Shopify configuration
func (c *ShopifyConfig) Validate() error {
	if c.OrdersAPIVersion == "" || c.ProductsAPIVersion == "" {
		return ErrShopifyConfigMissingAPIVersion
	}
	if c.PageSize < 1 || c.PageSize > 250 {
		return ErrShopifyConfigInvalidPageSize
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	return nil
}

// Endpoint returns the GraphQL endpoint for a shop and API version
func (c *ShopifyConfig) Endpoint(shopName, apiVersion string) string {
	base := "https://" + shopName
	if c.BaseURLOverride != "" {
		base = c.BaseURLOverride
	}
	return fmt.Sprintf("%s/admin/api/%s/graphql.json", base, apiVersion)
}
