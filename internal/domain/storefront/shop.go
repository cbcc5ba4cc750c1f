package storefront

import (
	"strings"

	"github.com/spyshark/backend/internal/domain/shared"
)

// Shop represents a connected storefront account. A user may connect any
// number of shops; each shop is identified by its myshopify-style domain
// and carries the access credential obtained during the OAuth handshake
// (handled outside this service).
type Shop struct {
	shared.BaseEntity
	ShopName    string `gorm:"type:varchar(255);not null;uniqueIndex:idx_shops_name_user,priority:1" json:"shopName"`
	ShopDomain  string `gorm:"type:varchar(255)" json:"shopDomain"`
	AccessToken string `gorm:"type:varchar(255);not null" json:"accessToken"`
	UserName    string `gorm:"type:varchar(255);not null;uniqueIndex:idx_shops_name_user,priority:2" json:"userName"`
}

// TableName returns the table name for GORM
func (Shop) TableName() string {
	return "shops"
}

// NewShop creates a new shop record
func NewShop(shopName, shopDomain, accessToken, userName string) (*Shop, error) {
	if strings.TrimSpace(shopName) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Shop name is required")
	}
	if strings.TrimSpace(accessToken) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Access token is required")
	}
	if strings.TrimSpace(userName) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "User name is required")
	}
	return &Shop{
		BaseEntity:  shared.NewBaseEntity(),
		ShopName:    shopName,
		ShopDomain:  shopDomain,
		AccessToken: accessToken,
		UserName:    userName,
	}, nil
}
