package analytics

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spyshark/backend/internal/domain/shared"
	"github.com/spyshark/backend/internal/domain/storefront"
)

// OrdersService lists a shop's orders joined with catalog details
type OrdersService struct {
	orderRepo   storefront.OrderRepository
	productRepo storefront.ProductRepository
	logger      *zap.Logger
}

// NewOrdersService creates a new OrdersService
func NewOrdersService(orderRepo storefront.OrderRepository, productRepo storefront.ProductRepository, logger *zap.Logger) *OrdersService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrdersService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// OrdersWithProducts returns every order of the shop with per-order totals
// and the catalog details of the products it references. Order lines that
// do not resolve against the catalog are skipped; the product list keeps
// first-occurrence order and holds one entry per product.
func (s *OrdersService) OrdersWithProducts(ctx context.Context, shopName string) ([]OrderWithProducts, error) {
	if shopName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Shop name is required and must be a string")
	}

	orders, err := s.orderRepo.FindByShop(ctx, shopName)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindByShopAndProductIDs(ctx, shopName, collectProductIDs(orders))
	if err != nil {
		return nil, err
	}
	lookup := flattenCatalog(products)

	response := make([]OrderWithProducts, 0, len(orders))
	for i := range orders {
		response = append(response, resolveOrder(&orders[i], lookup))
	}

	s.logger.Debug("orders listed",
		zap.String("shop_name", shopName),
		zap.Int("order_count", len(response)),
	)

	return response, nil
}

// resolveOrder joins one order with the catalog lookup, computing its
// discounted totals rounded to cents
func resolveOrder(order *storefront.Order, lookup map[variantKey]catalogEntry) OrderWithProducts {
	price := decimal.Zero
	netProfit := decimal.Zero
	resolved := make([]ResolvedProduct, 0)
	seen := make(map[string]struct{})

	for _, item := range order.LineItems {
		entry, ok := lookup[variantKey{productID: item.ProductID, variantID: item.VariantID}]
		if !ok {
			continue
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		price = price.Add(entry.VariantPrice.Mul(qty))
		netProfit = netProfit.Add(entry.effectiveNetProfit().Mul(qty))

		if _, dup := seen[item.ProductID]; !dup {
			seen[item.ProductID] = struct{}{}
			resolved = append(resolved, entry.toResolvedProduct())
		}
	}

	price = applyDiscount(price, order.DiscountPercentage)
	netProfit = applyDiscount(netProfit, order.DiscountPercentage)

	return OrderWithProducts{
		ShopName:            order.ShopName,
		OrderID:             order.OrderID,
		CustomerEmail:       order.CustomerEmail,
		CreatedAt:           order.PlacedAt,
		OrderQuantity:       order.Quantity,
		FinancialStatus:     order.FinancialStatus,
		DiscountPercentage:  order.DiscountPercentage,
		TotalOrderPrice:     price.Round(2).InexactFloat64(),
		TotalOrderNetProfit: netProfit.Round(2).InexactFloat64(),
		Products:            resolved,
	}
}
