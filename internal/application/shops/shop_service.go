package shops

import (
	"context"

	"go.uber.org/zap"

	"github.com/spyshark/backend/internal/domain/shared"
	"github.com/spyshark/backend/internal/domain/storefront"
)

// ShopService lists the storefronts a user has connected
type ShopService struct {
	shopRepo storefront.ShopRepository
	logger   *zap.Logger
}

// NewShopService creates a new ShopService
func NewShopService(shopRepo storefront.ShopRepository, logger *zap.Logger) *ShopService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShopService{
		shopRepo: shopRepo,
		logger:   logger,
	}
}

// ListShops returns all shops connected by the given user
func (s *ShopService) ListShops(ctx context.Context, userName string) ([]storefront.Shop, error) {
	if userName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "User name is required")
	}
	return s.shopRepo.FindByUser(ctx, userName)
}
