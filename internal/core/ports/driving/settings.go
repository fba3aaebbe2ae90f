package driving

import (
	"context"

	"github.com/daetec/vendas-cli/internal/core/domain"
)

// SettingsService manages database-backed settings (fee rates).
type SettingsService interface {
	// Get returns the stored value for a key, or
	// domain.DefaultSettingValue when the key is absent or unreadable.
	Get(ctx context.Context, key string) string

	// Set upserts a setting.
	Set(ctx context.Context, key, value string) error

	// FeeRate returns the fee rate configured for a payment method,
	// parsed as a float. Unset or malformed rates are zero.
	FeeRate(ctx context.Context, method domain.PaymentMethod) float64
}
