package storefront

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spyshark/backend/internal/domain/shared"
)

// LineItem is one product+variant+quantity entry within an order
type LineItem struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"product_quantity"`
}

// LineItemList stores an order's line items as a JSONB document column
type LineItemList []LineItem

// Value implements driver.Valuer for JSONB storage
func (l LineItemList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for JSONB storage
func (l *LineItemList) Scan(value interface{}) error {
	if value == nil {
		*l = LineItemList{}
		return nil
	}
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, l)
	case string:
		return json.Unmarshal([]byte(data), l)
	default:
		return fmt.Errorf("storefront: cannot scan %T into LineItemList", value)
	}
}

// Order is a cached copy of a storefront order. Orders are immutable once
// ingested; re-ingestion of an existing OrderID is a no-op enforced by a
// unique index. PlacedAt is the order's creation time on the platform, not
// the time it reached this service.
type Order struct {
	shared.BaseEntity
	ShopName           string       `gorm:"type:varchar(255);not null;index" json:"shopName"`
	OrderID            string       `gorm:"type:varchar(64);not null;uniqueIndex" json:"order_id"`
	CustomerEmail      string       `gorm:"type:varchar(255)" json:"customer_email"`
	PlacedAt           time.Time    `gorm:"column:placed_at;not null;index" json:"createdAt"`
	Quantity           int          `gorm:"not null;default:0" json:"order_quantity"`
	FinancialStatus    string       `gorm:"type:varchar(50)" json:"displayFinancialStatus"`
	DiscountPercentage int          `gorm:"not null;default:0" json:"totalDiscountPercentage"`
	LineItems          LineItemList `gorm:"type:jsonb" json:"products"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates an order as ingested from the external platform
func NewOrder(shopName, orderID, customerEmail, financialStatus string, placedAt time.Time, quantity, discountPercentage int, items []LineItem) (*Order, error) {
	if strings.TrimSpace(shopName) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Shop name is required")
	}
	if strings.TrimSpace(orderID) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Order ID is required")
	}
	if placedAt.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Order creation time is required")
	}
	if discountPercentage < 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Discount percentage cannot be negative")
	}
	return &Order{
		BaseEntity:         shared.NewBaseEntity(),
		ShopName:           shopName,
		OrderID:            orderID,
		CustomerEmail:      customerEmail,
		PlacedAt:           placedAt,
		Quantity:           quantity,
		FinancialStatus:    financialStatus,
		DiscountPercentage: discountPercentage,
		LineItems:          items,
	}, nil
}
