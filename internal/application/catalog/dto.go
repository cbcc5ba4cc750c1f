package catalog

// VariantUpdate carries the editable fields of one variant
type VariantUpdate struct {
	VariantID string  `json:"variant_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Margin    float64 `json:"margin"`
	NetProfit float64 `json:"net_profit"`
}

// UpdateProductRequest overwrites a product's profit figures and variant
// list. Name, price, and image are sync-owned and stay untouched.
type UpdateProductRequest struct {
	Margin    float64         `json:"margin"`
	NetProfit float64         `json:"net_profit"`
	Variants  []VariantUpdate `json:"variants"`
}
