package storefront

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spyshark/backend/internal/domain/shared"
)

// Variant is one purchasable variation of a product. Margin and net profit
// default to zero at ingestion and are only ever set by a user edit.
type Variant struct {
	VariantID string          `json:"variant_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Margin    decimal.Decimal `json:"margin"`
	NetProfit decimal.Decimal `json:"net_profit"`
}

// VariantList stores a product's variants as a JSONB document column
type VariantList []Variant

// Value implements driver.Valuer for JSONB storage
func (v VariantList) Value() (driver.Value, error) {
	if v == nil {
		return "[]", nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for JSONB storage
func (v *VariantList) Scan(value interface{}) error {
	if value == nil {
		*v = VariantList{}
		return nil
	}
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, v)
	case string:
		return json.Unmarshal([]byte(data), v)
	default:
		return fmt.Errorf("storefront: cannot scan %T into VariantList", value)
	}
}

// Product is a cached copy of a storefront product. ProductID is the
// external identifier with the platform prefix stripped; it is unique per
// shop and never reused, so ingestion can rely on insert-or-ignore.
type Product struct {
	shared.BaseEntity
	ShopName  string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_products_shop_ext,priority:1" json:"shopName"`
	ProductID string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_products_shop_ext,priority:2" json:"product_id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"price"`
	Margin    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"margin"`
	NetProfit decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"net_profit"`
	Image     string          `gorm:"type:text" json:"image"`
	Variants  VariantList     `gorm:"type:jsonb" json:"variants"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a product as ingested from the external platform.
// Margin starts at zero and net profit is seeded with the converted price,
// i.e. price minus the zero margin.
func NewProduct(shopName, productID, name, image string, price decimal.Decimal, variants []Variant) (*Product, error) {
	if strings.TrimSpace(shopName) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Shop name is required")
	}
	if strings.TrimSpace(productID) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Product ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Product name is required")
	}
	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		ShopName:   shopName,
		ProductID:  productID,
		Name:       name,
		Price:      price,
		Margin:     decimal.Zero,
		NetProfit:  price,
		Image:      image,
		Variants:   variants,
	}, nil
}

// FindVariant returns the variant with the given external ID, or nil
func (p *Product) FindVariant(variantID string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].VariantID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}
