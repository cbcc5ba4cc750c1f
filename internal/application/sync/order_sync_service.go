package sync

import (
	"context"

	"go.uber.org/zap"

	"github.com/spyshark/backend/internal/domain/integration"
	"github.com/spyshark/backend/internal/domain/shared"
	"github.com/spyshark/backend/internal/domain/storefront"
)

// OrderSyncService pulls a shop's orders from the storefront platform and
// caches the ones not seen before
type OrderSyncService struct {
	platform  integration.StorefrontPlatform
	orderRepo storefront.OrderRepository
	logger    *zap.Logger
}

// NewOrderSyncService creates a new OrderSyncService
func NewOrderSyncService(platform integration.StorefrontPlatform, orderRepo storefront.OrderRepository, logger *zap.Logger) *OrderSyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderSyncService{
		platform:  platform,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// SyncOrders pulls all orders of the shop and inserts each one unless its
// external ID is already cached. Rows persisted before a failure remain.
func (s *OrderSyncService) SyncOrders(ctx context.Context, creds integration.Credentials) (*OrderSyncResult, error) {
	if err := creds.Validate(); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "shopName and accessToken are required")
	}

	pulled, err := s.platform.PullOrders(ctx, creds)
	if err != nil {
		s.logger.Error("order pull failed",
			zap.String("shop_name", creds.ShopName),
			zap.Error(err),
		)
		return nil, shared.NewDomainError("UPSTREAM_ERROR", "Failed to fetch orders from storefront platform")
	}

	result := &OrderSyncResult{AddedOrderIDs: make([]string, 0)}
	for _, po := range pulled {
		items := make([]storefront.LineItem, 0, len(po.LineItems))
		for _, li := range po.LineItems {
			items = append(items, storefront.LineItem{
				ProductID: li.ProductID,
				VariantID: li.VariantID,
				Quantity:  li.Quantity,
			})
		}

		order, err := storefront.NewOrder(creds.ShopName, po.OrderID, po.CustomerEmail,
			po.FinancialStatus, po.CreatedAt, po.Quantity, po.DiscountPercentage, items)
		if err != nil {
			s.logger.Warn("skipping malformed platform order",
				zap.String("order_id", po.OrderID),
				zap.Error(err),
			)
			continue
		}

		inserted, err := s.orderRepo.Insert(ctx, order)
		if err != nil {
			return nil, shared.NewDomainError("PERSISTENCE_ERROR", "Failed to store orders")
		}
		if inserted {
			result.AddedCount++
			result.AddedOrderIDs = append(result.AddedOrderIDs, order.OrderID)
		}
	}

	s.logger.Info("order sync finished",
		zap.String("shop_name", creds.ShopName),
		zap.Int("pulled", len(pulled)),
		zap.Int("added", result.AddedCount),
	)

	return result, nil
}
