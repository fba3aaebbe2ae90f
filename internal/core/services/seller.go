package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/daetec/vendas-cli/internal/core/domain"
	"github.com/daetec/vendas-cli/internal/core/ports/driven"
	"github.com/daetec/vendas-cli/internal/core/ports/driving"
)

// Ensure SellerService implements the interface.
var _ driving.SellerService = (*SellerService)(nil)

// SellerService manages the seller registry.
type SellerService struct {
	sellers driven.SellerStore
	caser   cases.Caser
	logger  *zap.Logger
}

// NewSellerService creates a new seller service.
func NewSellerService(sellers driven.SellerStore, logger *zap.Logger) *SellerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SellerService{
		sellers: sellers,
		caser:   cases.Title(language.BrazilianPortuguese),
		logger:  logger,
	}
}

// Add registers a seller under the normalized form of name.
func (s *SellerService) Add(ctx context.Context, name string) (domain.Seller, error) {
	normalized := s.normalizeName(name)
	if normalized == "" {
		return domain.Seller{}, fmt.Errorf("%w: seller name is empty", domain.ErrInvalidInput)
	}

	seller, err := s.sellers.Add(ctx, normalized)
	if err != nil {
		s.logger.Warn("adding seller failed", zap.String("name", normalized), zap.Error(err))
		return domain.Seller{}, err
	}

	s.logger.Debug("seller added", zap.Int64("id", seller.ID), zap.String("name", seller.Name))
	return seller, nil
}

// Remove deletes a seller by id.
func (s *SellerService) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: seller id must be positive", domain.ErrInvalidInput)
	}

	if err := s.sellers.Delete(ctx, id); err != nil {
		s.logger.Warn("removing seller failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.logger.Debug("seller removed", zap.Int64("id", id))
	return nil
}

// List returns all sellers ordered by id.
func (s *SellerService) List(ctx context.Context) ([]domain.Seller, error) {
	return s.sellers.List(ctx)
}

// normalizeName trims and title-cases a seller name, so " maria souza "
// and "MARIA SOUZA" resolve to the same registry entry.
func (s *SellerService) normalizeName(name string) string {
	return s.caser.String(strings.ToLower(strings.TrimSpace(name)))
}
