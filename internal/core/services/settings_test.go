package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daetec/vendas-cli/internal/adapters/driven/storage/memory"
	"github.com/daetec/vendas-cli/internal/core/domain"
)

func TestSettingsService_GetDefaultsWhenAbsent(t *testing.T) {
	stores := memory.NewStores()
	svc := NewSettingsService(stores.Settings, nil)

	assert.Equal(t, domain.DefaultSettingValue, svc.Get(context.Background(), domain.SettingFeeCredit))
}

func TestSettingsService_SetAndGet(t *testing.T) {
	stores := memory.NewStores()
	svc := NewSettingsService(stores.Settings, nil)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, domain.SettingFeeCredit, "3.5"))
	assert.Equal(t, "3.5", svc.Get(ctx, domain.SettingFeeCredit))
}

func TestSettingsService_SetEmptyKey(t *testing.T) {
	stores := memory.NewStores()
	svc := NewSettingsService(stores.Settings, nil)

	assert.ErrorIs(t, svc.Set(context.Background(), "  ", "1.0"), domain.ErrInvalidInput)
}

func TestSettingsService_FeeRate(t *testing.T) {
	stores := memory.NewStores()
	svc := NewSettingsService(stores.Settings, nil)
	ctx := context.Background()

	// Unset rates default to zero via the "0.0" sentinel.
	assert.Zero(t, svc.FeeRate(ctx, domain.PaymentPix))

	require.NoError(t, svc.Set(ctx, domain.SettingFeePix, "0.8"))
	assert.InDelta(t, 0.8, svc.FeeRate(ctx, domain.PaymentPix), 0.0001)
}

func TestSettingsService_FeeRateMalformed(t *testing.T) {
	stores := memory.NewStores()
	svc := NewSettingsService(stores.Settings, nil)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, domain.SettingFeeDebit, "not-a-number"))
	assert.Zero(t, svc.FeeRate(ctx, domain.PaymentDebit))
}
