package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daetec/vendas-cli/internal/adapters/driven/storage/memory"
	"github.com/daetec/vendas-cli/internal/core/domain"
)

func TestReportService_EmptyStore(t *testing.T) {
	stores := memory.NewStores()
	svc := NewReportService(stores.Sales, nil)

	report, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Contains(t, report, EmptyReportMessage)
}

func TestReportService_SingleSellerSection(t *testing.T) {
	stores := memory.NewStores()
	ctx := context.Background()

	seller, err := stores.Sellers.Add(ctx, "Maria Souza")
	require.NoError(t, err)
	product, err := stores.Products.Add(ctx, domain.Product{Name: "Coxinha", Price: 10, SellerID: seller.ID})
	require.NoError(t, err)

	sales := NewSaleService(stores.Sales, nil)
	_, err = sales.Register(ctx, domain.SaleDraft{
		SellerID: seller.ID,
		Items:    []domain.SaleItem{{ProductCode: product.Code, Quantity: 2, UnitPrice: 10.00}},
		Payments: []domain.Payment{{Method: domain.PaymentCash, Amount: 20.00}},
	})
	require.NoError(t, err)

	report, err := NewReportService(stores.Sales, nil).Generate(ctx)
	require.NoError(t, err)

	assert.Contains(t, report, "RELATORIO DE VENDAS")
	assert.Contains(t, report, "Vendedor: Maria Souza")
	assert.Contains(t, report, "Coxinha")
	assert.Contains(t, report, "cash")
	// Brazilian currency style: comma decimals.
	assert.Contains(t, report, "20,00")
	assert.NotContains(t, report, EmptyReportMessage)
}

func TestReportService_ThousandsSeparator(t *testing.T) {
	stores := memory.NewStores()
	ctx := context.Background()

	seller, err := stores.Sellers.Add(ctx, "Maria Souza")
	require.NoError(t, err)
	product, err := stores.Products.Add(ctx, domain.Product{Name: "Churrasco", Price: 123.50, SellerID: seller.ID})
	require.NoError(t, err)

	sales := NewSaleService(stores.Sales, nil)
	_, err = sales.Register(ctx, domain.SaleDraft{
		SellerID: seller.ID,
		Items:    []domain.SaleItem{{ProductCode: product.Code, Quantity: 10, UnitPrice: 123.50}},
		Payments: []domain.Payment{{Method: domain.PaymentCredit, Amount: 1235.00}},
	})
	require.NoError(t, err)

	report, err := NewReportService(stores.Sales, nil).Generate(ctx)
	require.NoError(t, err)
	assert.Contains(t, report, "1.235,00")
}

func TestReportService_SellersAlphabetical(t *testing.T) {
	stores := memory.NewStores()
	ctx := context.Background()

	zilda, err := stores.Sellers.Add(ctx, "Zilda Prado")
	require.NoError(t, err)
	ana, err := stores.Sellers.Add(ctx, "Ana Braga")
	require.NoError(t, err)

	pz, err := stores.Products.Add(ctx, domain.Product{Name: "Coxinha", Price: 10, SellerID: zilda.ID})
	require.NoError(t, err)
	pa, err := stores.Products.Add(ctx, domain.Product{Name: "Pastel", Price: 6, SellerID: ana.ID})
	require.NoError(t, err)

	sales := NewSaleService(stores.Sales, nil)
	for _, sale := range []domain.SaleDraft{
		{
			SellerID: zilda.ID,
			Items:    []domain.SaleItem{{ProductCode: pz.Code, Quantity: 1, UnitPrice: 10}},
			Payments: []domain.Payment{{Method: domain.PaymentCash, Amount: 10}},
		},
		{
			SellerID: ana.ID,
			Items:    []domain.SaleItem{{ProductCode: pa.Code, Quantity: 1, UnitPrice: 6}},
			Payments: []domain.Payment{{Method: domain.PaymentPix, Amount: 6}},
		},
	} {
		_, err := sales.Register(ctx, sale)
		require.NoError(t, err)
	}

	report, err := NewReportService(stores.Sales, nil).Generate(ctx)
	require.NoError(t, err)

	anaAt := strings.Index(report, "Vendedor: Ana Braga")
	zildaAt := strings.Index(report, "Vendedor: Zilda Prado")
	require.GreaterOrEqual(t, anaAt, 0)
	require.GreaterOrEqual(t, zildaAt, 0)
	assert.Less(t, anaAt, zildaAt)
}
