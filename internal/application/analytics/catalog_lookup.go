package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/spyshark/backend/internal/domain/storefront"
)

// variantKey resolves an order line to exactly one catalog variant
type variantKey struct {
	productID string
	variantID string
}

// catalogEntry is a product joined to one of its variants, the unit every
// profit calculation works with
type catalogEntry struct {
	ProductID        string
	Name             string
	Image            string
	Price            decimal.Decimal
	Margin           decimal.Decimal
	NetProfit        decimal.Decimal
	VariantID        string
	VariantName      string
	VariantPrice     decimal.Decimal
	VariantMargin    decimal.Decimal
	VariantNetProfit decimal.Decimal
}

// effectiveNetProfit is the variant-level net profit when the variant has
// its own margin set, otherwise the product-level net profit
func (e catalogEntry) effectiveNetProfit() decimal.Decimal {
	if e.VariantMargin.IsPositive() {
		return e.VariantNetProfit
	}
	return e.NetProfit
}

func (e catalogEntry) toResolvedProduct() ResolvedProduct {
	return ResolvedProduct{
		ProductID:        e.ProductID,
		Name:             e.Name,
		Image:            e.Image,
		Price:            e.Price.InexactFloat64(),
		Margin:           e.Margin.InexactFloat64(),
		NetProfit:        e.NetProfit.InexactFloat64(),
		VariantID:        e.VariantID,
		VariantName:      e.VariantName,
		VariantPrice:     e.VariantPrice.InexactFloat64(),
		VariantMargin:    e.VariantMargin.InexactFloat64(),
		VariantNetProfit: e.VariantNetProfit.InexactFloat64(),
	}
}

// collectProductIDs gathers the distinct product IDs referenced by the
// orders, preserving first-occurrence order
func collectProductIDs(orders []storefront.Order) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, order := range orders {
		for _, item := range order.LineItems {
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}
	return ids
}

// flattenCatalog expands products into per-variant entries keyed by
// (product, variant). The first entry for a key wins.
func flattenCatalog(products []storefront.Product) map[variantKey]catalogEntry {
	lookup := make(map[variantKey]catalogEntry)
	for _, product := range products {
		for _, variant := range product.Variants {
			key := variantKey{productID: product.ProductID, variantID: variant.VariantID}
			if _, ok := lookup[key]; ok {
				continue
			}
			lookup[key] = catalogEntry{
				ProductID:        product.ProductID,
				Name:             product.Name,
				Image:            product.Image,
				Price:            product.Price,
				Margin:           product.Margin,
				NetProfit:        product.NetProfit,
				VariantID:        variant.VariantID,
				VariantName:      variant.Name,
				VariantPrice:     variant.Price,
				VariantMargin:    variant.Margin,
				VariantNetProfit: variant.NetProfit,
			}
		}
	}
	return lookup
}

// applyDiscount reduces an amount by a whole-percentage discount
func applyDiscount(amount decimal.Decimal, discountPercentage int) decimal.Decimal {
	if discountPercentage <= 0 {
		return amount
	}
	pct := decimal.NewFromInt(int64(discountPercentage)).Div(decimal.NewFromInt(100))
	return amount.Sub(amount.Mul(pct))
}
