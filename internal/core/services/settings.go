package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/daetec/vendas-cli/internal/core/domain"
	"github.com/daetec/vendas-cli/internal/core/ports/driven"
	"github.com/daetec/vendas-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages database-backed settings such as fee rates.
type SettingsService struct {
	settings driven.SettingStore
	logger   *zap.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settings driven.SettingStore, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{
		settings: settings,
		logger:   logger,
	}
}

// Get returns the stored value for key. Absent keys and read failures
// both degrade to domain.DefaultSettingValue; failures are logged.
func (s *SettingsService) Get(ctx context.Context, key string) string {
	value, err := s.settings.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("reading setting failed", zap.String("key", key), zap.Error(err))
		}
		return domain.DefaultSettingValue
	}
	return value
}

// Set upserts a setting.
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: setting key is empty", domain.ErrInvalidInput)
	}

	if err := s.settings.Set(ctx, key, value); err != nil {
		s.logger.Warn("writing setting failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// FeeRate returns the configured fee rate for a payment method.
// Unset or malformed rates are zero.
func (s *SettingsService) FeeRate(ctx context.Context, method domain.PaymentMethod) float64 {
	raw := s.Get(ctx, "fee."+string(method))
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.logger.Warn("malformed fee rate",
			zap.String("method", string(method)),
			zap.String("value", raw))
		return 0
	}
	return rate
}
