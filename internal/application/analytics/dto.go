package analytics

import "time"

// ShopProfitResponse is the aggregated profit report for one shop and period.
// Revenue and profit are raw accumulations; percentage change is formatted
// with two decimals.
type ShopProfitResponse struct {
	TotalProfit      float64 `json:"total_profit"`
	TotalRevenue     float64 `json:"total_revenue"`
	ComparisonStatus string  `json:"comparison_status"`
	PercentageChange string  `json:"percentage_change"`
}

// ResolvedProduct is a catalog entry joined to one of its variants, flattened
// for the order listing
type ResolvedProduct struct {
	ProductID        string  `json:"product_id"`
	Name             string  `json:"name"`
	Image            string  `json:"image"`
	Price            float64 `json:"price"`
	Margin           float64 `json:"margin"`
	NetProfit        float64 `json:"net_profit"`
	VariantID        string  `json:"variant_id"`
	VariantName      string  `json:"variant_name"`
	VariantPrice     float64 `json:"variant_price"`
	VariantMargin    float64 `json:"variant_margin"`
	VariantNetProfit float64 `json:"variant_net_profit"`
}

// OrderWithProducts is one order enriched with per-order totals and the
// catalog details of the products it references
type OrderWithProducts struct {
	ShopName            string            `json:"shopName"`
	OrderID             string            `json:"order_id"`
	CustomerEmail       string            `json:"customer_email"`
	CreatedAt           time.Time         `json:"createdAt"`
	OrderQuantity       int               `json:"order_quantity"`
	FinancialStatus     string            `json:"displayFinancialStatus"`
	DiscountPercentage  int               `json:"totalDiscountPercentage"`
	TotalOrderPrice     float64           `json:"total_order_price"`
	TotalOrderNetProfit float64           `json:"total_order_net_profit"`
	Products            []ResolvedProduct `json:"products"`
}
