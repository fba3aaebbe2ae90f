package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/daetec/vendas-cli/internal/core/domain"
	"github.com/daetec/vendas-cli/internal/core/ports/driven"
	"github.com/daetec/vendas-cli/internal/core/ports/driving"
)

// Ensure ProductService implements the interface.
var _ driving.ProductService = (*ProductService)(nil)

// ProductService manages the product catalog.
type ProductService struct {
	products driven.ProductStore
	logger   *zap.Logger
}

// NewProductService creates a new product service.
func NewProductService(products driven.ProductStore, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		products: products,
		logger:   logger,
	}
}

// Add registers a product and returns it with its generated code.
func (s *ProductService) Add(ctx context.Context, name string, price float64, sellerID int64) (domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Product{}, fmt.Errorf("%w: product name is empty", domain.ErrInvalidInput)
	}
	if price <= 0 {
		return domain.Product{}, fmt.Errorf("%w: price must be positive", domain.ErrInvalidInput)
	}
	if sellerID <= 0 {
		return domain.Product{}, fmt.Errorf("%w: seller id must be positive", domain.ErrInvalidInput)
	}

	product, err := s.products.Add(ctx, domain.Product{
		Name:     name,
		Price:    price,
		SellerID: sellerID,
	})
	if err != nil {
		s.logger.Warn("adding product failed", zap.String("name", name), zap.Error(err))
		return domain.Product{}, err
	}

	s.logger.Debug("product added",
		zap.String("code", product.Code),
		zap.String("name", product.Name),
		zap.Int64("seller_id", product.SellerID))
	return product, nil
}

// Remove deletes a product by code.
func (s *ProductService) Remove(ctx context.Context, code string) error {
	code = domain.NormalizeProductCode(code)
	if code == "" {
		return fmt.Errorf("%w: product code is empty", domain.ErrInvalidInput)
	}

	if err := s.products.Delete(ctx, code); err != nil {
		s.logger.Warn("removing product failed", zap.String("code", code), zap.Error(err))
		return err
	}

	s.logger.Debug("product removed", zap.String("code", code))
	return nil
}

// Get retrieves a product by code.
func (s *ProductService) Get(ctx context.Context, code string) (*domain.Product, error) {
	code = domain.NormalizeProductCode(code)
	if code == "" {
		return nil, fmt.Errorf("%w: product code is empty", domain.ErrInvalidInput)
	}
	return s.products.Get(ctx, code)
}

// List returns the whole catalog joined with seller names.
func (s *ProductService) List(ctx context.Context) ([]domain.ProductListing, error) {
	return s.products.List(ctx)
}

// ListBySeller returns one seller's products.
func (s *ProductService) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Product, error) {
	if sellerID <= 0 {
		return nil, fmt.Errorf("%w: seller id must be positive", domain.ErrInvalidInput)
	}
	return s.products.ListBySeller(ctx, sellerID)
}
