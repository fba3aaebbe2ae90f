package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daetec/vendas-cli/internal/core/domain"
	"github.com/daetec/vendas-cli/internal/core/ports/driven"
	"github.com/daetec/vendas-cli/internal/core/ports/driving"
)

// Ensure SaleService implements the interface.
var _ driving.SaleService = (*SaleService)(nil)

// SaleService records sales and manages the sales history.
type SaleService struct {
	sales  driven.SaleStore
	logger *zap.Logger
	now    func() time.Time
}

// NewSaleService creates a new sale service.
func NewSaleService(sales driven.SaleStore, logger *zap.Logger) *SaleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaleService{
		sales:  sales,
		logger: logger,
		now:    time.Now,
	}
}

// Register validates and persists a sale atomically.
//
// The total is computed from the line items, never taken from the caller,
// and the payments-equal-total invariant is enforced here, before the
// transaction starts. Product codes are normalized so cart entries typed
// in lower case still resolve.
func (s *SaleService) Register(ctx context.Context, draft domain.SaleDraft) (domain.Sale, error) {
	for i := range draft.Items {
		draft.Items[i].ProductCode = domain.NormalizeProductCode(draft.Items[i].ProductCode)
	}

	if err := draft.Validate(); err != nil {
		s.logger.Warn("sale rejected", zap.Int64("seller_id", draft.SellerID), zap.Error(err))
		return domain.Sale{}, err
	}

	sale := domain.Sale{
		Reference: uuid.NewString(),
		SellerID:  draft.SellerID,
		Total:     draft.ItemsTotal(),
		CreatedAt: s.now().UTC(),
	}

	stored, err := s.sales.Register(ctx, sale, draft.Items, draft.Payments)
	if err != nil {
		s.logger.Warn("registering sale failed",
			zap.Int64("seller_id", draft.SellerID),
			zap.Float64("total", sale.Total),
			zap.Error(err))
		return domain.Sale{}, err
	}

	s.logger.Debug("sale registered",
		zap.Int64("id", stored.ID),
		zap.String("reference", stored.Reference),
		zap.Float64("total", stored.Total),
		zap.Int("items", len(draft.Items)),
		zap.Int("payments", len(draft.Payments)))
	return stored, nil
}

// List returns all sales, newest first.
func (s *SaleService) List(ctx context.Context) ([]domain.Sale, error) {
	return s.sales.List(ctx)
}

// ClearHistory removes every sale with its items and payments.
func (s *SaleService) ClearHistory(ctx context.Context) error {
	if err := s.sales.ClearHistory(ctx); err != nil {
		s.logger.Warn("clearing sales history failed", zap.Error(err))
		return err
	}
	s.logger.Debug("sales history cleared")
	return nil
}
