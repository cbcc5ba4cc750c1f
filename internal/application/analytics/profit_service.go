package analytics

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spyshark/backend/internal/domain/shared"
	"github.com/spyshark/backend/internal/domain/storefront"
)

// validDays are the accepted values for a reporting window
var validDays = map[string]bool{
	"1": true, "7": true, "30": true, "90": true, "180": true, "360": true, "all": true,
}

// ProfitService aggregates revenue and profit over a shop's cached orders
type ProfitService struct {
	orderRepo   storefront.OrderRepository
	productRepo storefront.ProductRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewProfitService creates a new ProfitService
func NewProfitService(orderRepo storefront.OrderRepository, productRepo storefront.ProductRepository, logger *zap.Logger) *ProfitService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfitService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// ComputeShopProfit aggregates the shop's revenue and profit over the given
// window and compares the profit against the preceding period.
//
// The comparison window is one day wider than the current one, so current
// orders are counted in both periods. The catalog lookup is built from the
// products referenced by current-period orders only; order lines that do not
// resolve against it contribute nothing.
func (s *ProfitService) ComputeShopProfit(ctx context.Context, shopName, days string) (*ShopProfitResponse, error) {
	if shopName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Shop name is required and must be a string")
	}
	if !validDays[days] {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid days parameter. Allowed values are 1, 7, 30, 90, 180, 360, or all.")
	}

	orders, err := s.findOrders(ctx, shopName, days)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, shared.NewDomainError("NOT_FOUND", "No orders found for the given shop and date range.")
	}

	products, err := s.productRepo.FindByShopAndProductIDs(ctx, shopName, collectProductIDs(orders))
	if err != nil {
		return nil, err
	}
	lookup := flattenCatalog(products)

	totalRevenue := decimal.Zero
	totalProfit := decimal.Zero
	for i := range orders {
		revenue, profit := orderTotals(&orders[i], lookup)
		totalRevenue = totalRevenue.Add(revenue)
		totalProfit = totalProfit.Add(profit)
	}

	previousDays := days
	if days != "all" {
		n, _ := strconv.Atoi(days)
		previousDays = strconv.Itoa(n + 1)
	}
	previousOrders, err := s.findOrders(ctx, shopName, previousDays)
	if err != nil {
		return nil, err
	}

	previousProfit := decimal.Zero
	for i := range previousOrders {
		_, profit := orderTotals(&previousOrders[i], lookup)
		previousProfit = previousProfit.Add(profit)
	}

	status, change := compareProfit(totalProfit, previousProfit)

	s.logger.Debug("shop profit computed",
		zap.String("shop_name", shopName),
		zap.String("days", days),
		zap.Int("order_count", len(orders)),
		zap.String("comparison_status", status),
	)

	return &ShopProfitResponse{
		TotalProfit:      totalProfit.InexactFloat64(),
		TotalRevenue:     totalRevenue.InexactFloat64(),
		ComparisonStatus: status,
		PercentageChange: change,
	}, nil
}

// findOrders fetches the shop's orders, bounded by a start-of-day floor
// unless the window is "all"
func (s *ProfitService) findOrders(ctx context.Context, shopName, days string) ([]storefront.Order, error) {
	if days == "all" {
		return s.orderRepo.FindByShop(ctx, shopName)
	}
	n, err := strconv.Atoi(days)
	if err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid days parameter. Allowed values are 1, 7, 30, 90, 180, 360, or all.")
	}
	since := startOfDay(s.now().AddDate(0, 0, -n))
	return s.orderRepo.FindByShopSince(ctx, shopName, since)
}

// orderTotals resolves each line of the order against the catalog lookup and
// returns the order's discounted revenue and profit. Unresolved lines are
// skipped.
func orderTotals(order *storefront.Order, lookup map[variantKey]catalogEntry) (revenue, profit decimal.Decimal) {
	price := decimal.Zero
	netProfit := decimal.Zero
	for _, item := range order.LineItems {
		entry, ok := lookup[variantKey{productID: item.ProductID, variantID: item.VariantID}]
		if !ok {
			continue
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		price = price.Add(entry.VariantPrice.Mul(qty))
		netProfit = netProfit.Add(entry.effectiveNetProfit().Mul(qty))
	}
	return applyDiscount(price, order.DiscountPercentage), applyDiscount(netProfit, order.DiscountPercentage)
}

// compareProfit classifies the profit movement between two periods and
// formats the relative change with two decimals
func compareProfit(current, previous decimal.Decimal) (string, string) {
	hundred := decimal.NewFromInt(100)

	if previous.IsZero() {
		if current.IsZero() {
			return "no change", "0.00"
		}
		return "increased", hundred.StringFixed(2)
	}

	switch current.Cmp(previous) {
	case 1:
		change := current.Sub(previous).Div(previous).Mul(hundred)
		return "increased", change.StringFixed(2)
	case -1:
		change := previous.Sub(current).Div(previous).Mul(hundred)
		return "decreased", change.StringFixed(2)
	default:
		return "no change", "0.00"
	}
}

// startOfDay truncates a time to local midnight
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
