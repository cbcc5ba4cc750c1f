package integration

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Platform Errors
// ---------------------------------------------------------------------------

var (
	ErrPlatformUnavailable     = errors.New("integration: platform temporarily unavailable")
	ErrPlatformRequestFailed   = errors.New("integration: platform request failed")
	ErrPlatformInvalidResponse = errors.New("integration: invalid platform response")
	ErrMissingCredentials      = errors.New("integration: shop name and access token are required")
	ErrRateUnavailable         = errors.New("integration: exchange rate unavailable")
)

// Credentials identifies a connected shop on the external platform
type Credentials struct {
	ShopName    string
	AccessToken string
}

// Validate checks that both credential fields are present
func (c Credentials) Validate() error {
	if c.ShopName == "" || c.AccessToken == "" {
		return ErrMissingCredentials
	}
	return nil
}

// PlatformLineItem is one line of a platform order, already stripped of
// platform ID prefixes
type PlatformLineItem struct {
	ProductID string
	VariantID string
	Quantity  int
}

// PlatformOrder is an order as pulled from the external platform and
// transformed into the internal shape
type PlatformOrder struct {
	OrderID            string
	CustomerEmail      string
	CreatedAt          time.Time
	FinancialStatus    string
	Quantity           int
	DiscountPercentage int
	LineItems          []PlatformLineItem
}

// PlatformVariant is one variant of a platform product. Price is in the
// shop's native currency; normalization happens at ingestion.
type PlatformVariant struct {
	VariantID string
	Name      string
	Price     decimal.Decimal
}

// PlatformProduct is a product as pulled from the external platform
type PlatformProduct struct {
	ProductID string
	Name      string
	Image     string
	Variants  []PlatformVariant
}

// StorefrontPlatform is the port for pulling data from a connected
// storefront. Implementations page through the platform API sequentially
// and return the full accumulated result; a failed page aborts the pull.
type StorefrontPlatform interface {
	// PullOrders returns all orders of the shop
	PullOrders(ctx context.Context, creds Credentials) ([]PlatformOrder, error)
	// PullProducts returns all products of the shop with native-currency prices
	PullProducts(ctx context.Context, creds Credentials) ([]PlatformProduct, error)
	// ShopCurrency returns the shop's ISO currency code
	ShopCurrency(ctx context.Context, creds Credentials) (string, error)
}

// RateProvider is the port for exchange-rate lookups
type RateProvider interface {
	// RateToUSD returns the multiplier converting the given currency to USD
	RateToUSD(ctx context.Context, currency string) (decimal.Decimal, error)
}
