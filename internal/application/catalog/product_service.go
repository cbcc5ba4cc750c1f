package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spyshark/backend/internal/domain/shared"
	"github.com/spyshark/backend/internal/domain/storefront"
)

// ProductService handles catalog reads and manual profit edits
type ProductService struct {
	productRepo storefront.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo storefront.ProductRepository, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListProducts returns all cached products of a shop
func (s *ProductService) ListProducts(ctx context.Context, shopName string) ([]storefront.Product, error) {
	if shopName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Shop name is required")
	}
	return s.productRepo.FindByShop(ctx, shopName)
}

// UpdateProduct overwrites the product's margin, net profit, and variant
// list. The full variant list replaces the stored one.
func (s *ProductService) UpdateProduct(ctx context.Context, productID string, req UpdateProductRequest) error {
	if productID == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Product ID is required")
	}

	variants := make(storefront.VariantList, 0, len(req.Variants))
	for _, v := range req.Variants {
		variants = append(variants, storefront.Variant{
			VariantID: v.VariantID,
			Name:      v.Name,
			Price:     decimal.NewFromFloat(v.Price),
			Margin:    decimal.NewFromFloat(v.Margin),
			NetProfit: decimal.NewFromFloat(v.NetProfit),
		})
	}

	if err := s.productRepo.UpdateProfit(ctx, productID,
		decimal.NewFromFloat(req.Margin),
		decimal.NewFromFloat(req.NetProfit),
		variants,
	); err != nil {
		return err
	}

	s.logger.Info("product profit updated", zap.String("product_id", productID))
	return nil
}

// UpdateVariant overwrites one variant's name, price, margin, and net profit
func (s *ProductService) UpdateVariant(ctx context.Context, productID string, req VariantUpdate) error {
	if productID == "" || req.VariantID == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Product ID and variant ID are required")
	}

	variant := storefront.Variant{
		VariantID: req.VariantID,
		Name:      req.Name,
		Price:     decimal.NewFromFloat(req.Price),
		Margin:    decimal.NewFromFloat(req.Margin),
		NetProfit: decimal.NewFromFloat(req.NetProfit),
	}

	if err := s.productRepo.UpdateVariant(ctx, productID, variant); err != nil {
		return err
	}

	s.logger.Info("variant updated",
		zap.String("product_id", productID),
		zap.String("variant_id", req.VariantID),
	)
	return nil
}
