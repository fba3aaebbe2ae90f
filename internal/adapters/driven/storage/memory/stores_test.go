package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daetec/vendas-cli/internal/core/domain"
)

func TestSellerStore_DuplicateName(t *testing.T) {
	stores := NewStores()
	ctx := context.Background()

	_, err := stores.Sellers.Add(ctx, "Maria Souza")
	require.NoError(t, err)

	_, err = stores.Sellers.Add(ctx, "Maria Souza")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestSellerStore_DeleteBlockedWhileReferenced(t *testing.T) {
	stores := NewStores()
	ctx := context.Background()

	seller, err := stores.Sellers.Add(ctx, "Maria Souza")
	require.NoError(t, err)
	_, err = stores.Products.Add(ctx, domain.Product{Name: "Coxinha", Price: 5, SellerID: seller.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, stores.Sellers.Delete(ctx, seller.ID), domain.ErrInUse)
}

func TestProductStore_SequentialCodes(t *testing.T) {
	stores := NewStores()
	ctx := context.Background()

	first, err := stores.Products.Add(ctx, domain.Product{Name: "Coxinha", Price: 5, SellerID: 1})
	require.NoError(t, err)
	second, err := stores.Products.Add(ctx, domain.Product{Name: "Pastel", Price: 6, SellerID: 1})
	require.NoError(t, err)

	assert.Equal(t, "PROD-0001", first.Code)
	assert.Equal(t, "PROD-0002", second.Code)
}

func TestSaleStore_RegisterChecksReferences(t *testing.T) {
	stores := NewStores()
	ctx := context.Background()

	seller, err := stores.Sellers.Add(ctx, "Maria Souza")
	require.NoError(t, err)

	_, err = stores.Sales.Register(ctx,
		domain.Sale{SellerID: seller.ID, Total: 10, CreatedAt: time.Now()},
		[]domain.SaleItem{{ProductCode: "PROD-9999", Quantity: 1, UnitPrice: 10}},
		[]domain.Payment{{Method: domain.PaymentCash, Amount: 10}})
	require.Error(t, err)

	sales, err := stores.Sales.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestSaleStore_SummaryMatchesSQLiteShape(t *testing.T) {
	stores := NewStores()
	ctx := context.Background()

	seller, err := stores.Sellers.Add(ctx, "Maria Souza")
	require.NoError(t, err)
	product, err := stores.Products.Add(ctx, domain.Product{Name: "Coxinha", Price: 10, SellerID: seller.ID})
	require.NoError(t, err)

	_, err = stores.Sales.Register(ctx,
		domain.Sale{SellerID: seller.ID, Total: 20, CreatedAt: time.Now()},
		[]domain.SaleItem{{ProductCode: product.Code, Quantity: 2, UnitPrice: 10}},
		[]domain.Payment{{Method: domain.PaymentPix, Amount: 20}})
	require.NoError(t, err)

	summaries, err := stores.Sales.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Maria Souza", summaries[0].SellerName)
	require.Len(t, summaries[0].Products, 1)
	assert.Equal(t, "Coxinha", summaries[0].Products[0].ProductName)
	assert.Equal(t, int64(2), summaries[0].Products[0].Quantity)
	require.Len(t, summaries[0].Payments, 1)
	assert.Equal(t, "pix", summaries[0].Payments[0].Method)
}

func TestSettingStore_RoundTrip(t *testing.T) {
	stores := NewStores()
	ctx := context.Background()

	_, err := stores.Settings.Get(ctx, "fee.cash")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, stores.Settings.Set(ctx, "fee.cash", "1.5"))
	value, err := stores.Settings.Get(ctx, "fee.cash")
	require.NoError(t, err)
	assert.Equal(t, "1.5", value)
}
