package sync

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spyshark/backend/internal/domain/integration"
	"github.com/spyshark/backend/internal/domain/shared"
	"github.com/spyshark/backend/internal/domain/storefront"
)

// defaultSaveConcurrency bounds parallel product inserts
const defaultSaveConcurrency = 8

// ProductSyncService pulls a shop's catalog from the storefront platform,
// normalizes prices to USD, and caches products not seen before
type ProductSyncService struct {
	platform    integration.StorefrontPlatform
	rates       integration.RateProvider
	productRepo storefront.ProductRepository
	logger      *zap.Logger
	concurrency int
}

// NewProductSyncService creates a new ProductSyncService
func NewProductSyncService(platform integration.StorefrontPlatform, rates integration.RateProvider, productRepo storefront.ProductRepository, logger *zap.Logger) *ProductSyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductSyncService{
		platform:    platform,
		rates:       rates,
		productRepo: productRepo,
		logger:      logger,
		concurrency: defaultSaveConcurrency,
	}
}

// SyncProducts pulls the shop's catalog and inserts each product unless
// (shop, product ID) is already cached. Prices are converted to USD with
// the shop's current exchange rate; margin starts at zero and product-level
// net profit starts at the converted price. Returns the number of products
// pulled.
func (s *ProductSyncService) SyncProducts(ctx context.Context, creds integration.Credentials) (int, error) {
	if err := creds.Validate(); err != nil {
		return 0, shared.NewDomainError("VALIDATION_ERROR", "shopName and accessToken are required")
	}

	currency, err := s.platform.ShopCurrency(ctx, creds)
	if err != nil {
		s.logger.Error("shop currency lookup failed",
			zap.String("shop_name", creds.ShopName),
			zap.Error(err),
		)
		return 0, shared.NewDomainError("UPSTREAM_ERROR", "Failed to determine shop currency")
	}

	rate, err := s.rates.RateToUSD(ctx, currency)
	if err != nil {
		s.logger.Error("exchange rate lookup failed",
			zap.String("currency", currency),
			zap.Error(err),
		)
		return 0, shared.NewDomainError("UPSTREAM_ERROR", "Failed to fetch exchange rate")
	}

	pulled, err := s.platform.PullProducts(ctx, creds)
	if err != nil {
		s.logger.Error("product pull failed",
			zap.String("shop_name", creds.ShopName),
			zap.Error(err),
		)
		return 0, shared.NewDomainError("UPSTREAM_ERROR", "Failed to fetch products from storefront platform")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, pp := range pulled {
		variants := make([]storefront.Variant, 0, len(pp.Variants))
		for _, pv := range pp.Variants {
			variants = append(variants, storefront.Variant{
				VariantID: pv.VariantID,
				Name:      pv.Name,
				Price:     pv.Price.Mul(rate).Round(2),
			})
		}

		price := firstVariantPrice(variants)
		product, err := storefront.NewProduct(creds.ShopName, pp.ProductID, pp.Name, pp.Image, price, variants)
		if err != nil {
			s.logger.Warn("skipping malformed platform product",
				zap.String("product_id", pp.ProductID),
				zap.Error(err),
			)
			continue
		}

		g.Go(func() error {
			_, err := s.productRepo.Insert(gctx, product)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("product save failed",
			zap.String("shop_name", creds.ShopName),
			zap.Error(err),
		)
		return 0, shared.NewDomainError("PERSISTENCE_ERROR", "Failed to store products")
	}

	s.logger.Info("product sync finished",
		zap.String("shop_name", creds.ShopName),
		zap.String("currency", currency),
		zap.Int("pulled", len(pulled)),
	)

	return len(pulled), nil
}

// firstVariantPrice mirrors how the product price is displayed: the first
// variant's price, or zero when the product has no variants
func firstVariantPrice(variants []storefront.Variant) decimal.Decimal {
	if len(variants) == 0 {
		return decimal.Zero
	}
	return variants[0].Price
}
