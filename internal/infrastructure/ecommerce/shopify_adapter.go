package ecommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spyshark/backend/internal/domain/integration"
)

// maxResponseSize is the maximum allowed response size from the Shopify API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// GraphQL node ID prefixes stripped before persistence
const (
	gidOrderPrefix   = "gid://shopify/Order/"
	gidProductPrefix = "gid://shopify/Product/"
	gidVariantPrefix = "gid://shopify/ProductVariant/"
)

const ordersQueryTemplate = `
  query PullOrders($cursor: String) {
    orders(first: %d, after: $cursor) {
      pageInfo {
        hasNextPage
        endCursor
      }
      nodes {
        id
        createdAt
        email
        displayFinancialStatus
        totalDiscountsSet {
          presentmentMoney {
            amount
            currencyCode
          }
        }
        lineItems(first: 100) {
          edges {
            node {
              quantity
              variant {
                id
                price
              }
              product {
                id
              }
            }
          }
        }
      }
    }
  }
`

const productsQueryTemplate = `
  query PullProducts($cursor: String) {
    products(first: %d, after: $cursor) {
      pageInfo {
        hasNextPage
        endCursor
      }
      edges {
        node {
          id
          title
          images(first: 1) {
            edges {
              node {
                src
              }
            }
          }
          variants(first: 100) {
            edges {
              node {
                id
                title
                price
              }
            }
          }
        }
      }
    }
  }
`

const shopCurrencyQuery = `
  query ShopCurrency {
    shop {
      currencyCode
    }
  }
`

// ShopifyAdapter implements the StorefrontPlatform port against the Shopify
// Admin GraphQL API. Pages are pulled sequentially with a fixed inter-page
// delay; a failed page aborts the pull and returns nothing.
type ShopifyAdapter struct {
	config     *ShopifyConfig
	httpClient *http.Client
}

// NewShopifyAdapter creates a new Shopify adapter with the given configuration
func NewShopifyAdapter(config *ShopifyConfig) (*ShopifyAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &ShopifyAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// PullOrders returns all orders of the shop, paging through the orders
// connection until exhausted
func (a *ShopifyAdapter) PullOrders(ctx context.Context, creds integration.Credentials) ([]integration.PlatformOrder, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	endpoint := a.config.Endpoint(creds.ShopName, a.config.OrdersAPIVersion)
	query := fmt.Sprintf(ordersQueryTemplate, a.config.PageSize)

	orders := make([]integration.PlatformOrder, 0)
	cursor := ""
	for {
		var resp shopifyOrdersResponse
		if err := a.doGraphQL(ctx, endpoint, creds.AccessToken, query, cursor, &resp); err != nil {
			return nil, err
		}
		if len(resp.Errors) > 0 {
			return nil, fmt.Errorf("%w: %s", integration.ErrPlatformRequestFailed, resp.Errors[0].Message)
		}
		if resp.Data == nil || resp.Data.Orders == nil {
			return nil, integration.ErrPlatformInvalidResponse
		}

		for i := range resp.Data.Orders.Nodes {
			orders = append(orders, convertOrderNode(&resp.Data.Orders.Nodes[i]))
		}

		if err := a.pause(ctx); err != nil {
			return nil, err
		}
		if !resp.Data.Orders.PageInfo.HasNextPage {
			break
		}
		cursor = resp.Data.Orders.PageInfo.EndCursor
	}

	return orders, nil
}

// PullProducts returns all products of the shop with native-currency prices
func (a *ShopifyAdapter) PullProducts(ctx context.Context, creds integration.Credentials) ([]integration.PlatformProduct, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	endpoint := a.config.Endpoint(creds.ShopName, a.config.ProductsAPIVersion)
	query := fmt.Sprintf(productsQueryTemplate, a.config.PageSize)

	products := make([]integration.PlatformProduct, 0)
	cursor := ""
	for {
		var resp shopifyProductsResponse
		if err := a.doGraphQL(ctx, endpoint, creds.AccessToken, query, cursor, &resp); err != nil {
			return nil, err
		}
		if len(resp.Errors) > 0 {
			return nil, fmt.Errorf("%w: %s", integration.ErrPlatformRequestFailed, resp.Errors[0].Message)
		}
		if resp.Data == nil || resp.Data.Products == nil {
			return nil, integration.ErrPlatformInvalidResponse
		}

		for i := range resp.Data.Products.Edges {
			products = append(products, convertProductNode(&resp.Data.Products.Edges[i].Node))
		}

		if err := a.pause(ctx); err != nil {
			return nil, err
		}
		if !resp.Data.Products.PageInfo.HasNextPage {
			break
		}
		cursor = resp.Data.Products.PageInfo.EndCursor
	}

	return products, nil
}

// ShopCurrency returns the shop's ISO currency code
func (a *ShopifyAdapter) ShopCurrency(ctx context.Context, creds integration.Credentials) (string, error) {
	if err := creds.Validate(); err != nil {
		return "", err
	}

	endpoint := a.config.Endpoint(creds.ShopName, a.config.ProductsAPIVersion)

	var resp shopifyShopResponse
	if err := a.doGraphQL(ctx, endpoint, creds.AccessToken, shopCurrencyQuery, "", &resp); err != nil {
		return "", err
	}
	if len(resp.Errors) > 0 {
		return "", fmt.Errorf("%w: %s", integration.ErrPlatformRequestFailed, resp.Errors[0].Message)
	}
	if resp.Data == nil || resp.Data.Shop == nil || resp.Data.Shop.CurrencyCode == "" {
		return "", integration.ErrPlatformInvalidResponse
	}
	return resp.Data.Shop.CurrencyCode, nil
}

// ---------------------------------------------------------------------------
// Internal Helpers
// ---------------------------------------------------------------------------

// doGraphQL performs one GraphQL request against the Admin API
func (a *ShopifyAdapter) doGraphQL(ctx context.Context, endpoint, accessToken, query, cursor string, out any) error {
	variables := map[string]any{"cursor": nil}
	if cursor != "" {
		variables["cursor"] = cursor
	}

	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("shopify: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("shopify: failed to create request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", integration.ErrPlatformUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("shopify: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: HTTP %d", integration.ErrPlatformRequestFailed, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to parse response: %v", integration.ErrPlatformInvalidResponse, err)
	}
	return nil
}

// pause waits the configured inter-page delay, honoring context cancellation
func (a *ShopifyAdapter) pause(ctx context.Context) error {
	if a.config.PageDelay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(a.config.PageDelay):
		return nil
	}
}

// convertOrderNode flattens one order node into the internal shape
func convertOrderNode(node *shopifyOrderNode) integration.PlatformOrder {
	order := integration.PlatformOrder{
		OrderID:         strings.TrimPrefix(node.ID, gidOrderPrefix),
		CustomerEmail:   node.Email,
		FinancialStatus: node.DisplayFinancialStatus,
		LineItems:       make([]integration.PlatformLineItem, 0, len(node.LineItems.Edges)),
	}

	if t, err := time.Parse(time.RFC3339, node.CreatedAt); err == nil {
		order.CreatedAt = t
	}

	lineTotal := decimal.Zero
	for _, edge := range node.LineItems.Edges {
		item := edge.Node
		order.Quantity += item.Quantity
		lineTotal = lineTotal.Add(parseAmount(item.Variant.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
		order.LineItems = append(order.LineItems, integration.PlatformLineItem{
			ProductID: strings.TrimPrefix(item.Product.ID, gidProductPrefix),
			VariantID: strings.TrimPrefix(item.Variant.ID, gidVariantPrefix),
			Quantity:  item.Quantity,
		})
	}

	discount := decimal.Zero
	if node.TotalDiscountsSet != nil {
		discount = parseAmount(node.TotalDiscountsSet.PresentmentMoney.Amount)
	}
	order.DiscountPercentage = discountPercentage(discount, lineTotal)

	return order
}

// convertProductNode flattens one product node into the internal shape
func convertProductNode(node *shopifyProductNode) integration.PlatformProduct {
	product := integration.PlatformProduct{
		ProductID: strings.TrimPrefix(node.ID, gidProductPrefix),
		Name:      node.Title,
		Variants:  make([]integration.PlatformVariant, 0, len(node.Variants.Edges)),
	}

	if len(node.Images.Edges) > 0 {
		product.Image = node.Images.Edges[0].Node.Src
	}

	for _, edge := range node.Variants.Edges {
		product.Variants = append(product.Variants, integration.PlatformVariant{
			VariantID: strings.TrimPrefix(edge.Node.ID, gidVariantPrefix),
			Name:      edge.Node.Title,
			Price:     parseAmount(edge.Node.Price),
		})
	}

	return product
}

// discountPercentage is the order's discount as a whole percentage of its
// undiscounted line total, rounded half away from zero. Zero when the line
// total is zero.
func discountPercentage(discount, lineTotal decimal.Decimal) int {
	if !lineTotal.IsPositive() {
		return 0
	}
	return int(discount.Div(lineTotal).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// parseAmount parses a decimal amount string, returning zero on malformed input
func parseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Ensure ShopifyAdapter implements the StorefrontPlatform port
var _ integration.StorefrontPlatform = (*ShopifyAdapter)(nil)
