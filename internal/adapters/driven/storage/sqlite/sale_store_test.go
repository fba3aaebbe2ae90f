package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daetec/vendas-cli/internal/core/domain"
)

// registerTestSale persists a two-item, single-payment sale for the
// given seller and products.
func registerTestSale(t *testing.T, store *Store, sellerID int64, codeA, codeB string) domain.Sale {
	t.Helper()

	sale, err := store.SaleStore().Register(context.Background(),
		domain.Sale{
			Reference: "ref-" + codeA,
			SellerID:  sellerID,
			Total:     25.00,
			CreatedAt: time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC),
		},
		[]domain.SaleItem{
			{ProductCode: codeA, Quantity: 2, UnitPrice: 10.00},
			{ProductCode: codeB, Quantity: 1, UnitPrice: 5.00},
		},
		[]domain.Payment{
			{Method: domain.PaymentCash, Amount: 25.00},
		})
	require.NoError(t, err)
	return sale
}

func countRows(t *testing.T, store *Store, table string) int {
	t.Helper()
	var n int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestSaleStore_RegisterPersistsAllRows(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	seller := addTestSeller(t, store, "Maria Souza")
	pa := addTestProduct(t, store, "Coxinha", 10.00, seller.ID)
	pb := addTestProduct(t, store, "Refrigerante", 5.00, seller.ID)

	sale := registerTestSale(t, store, seller.ID, pa.Code, pb.Code)
	assert.Equal(t, int64(1), sale.ID)

	assert.Equal(t, 1, countRows(t, store, "sales"))
	assert.Equal(t, 2, countRows(t, store, "sale_items"))
	assert.Equal(t, 1, countRows(t, store, "sale_payments"))
}

func TestSaleStore_RegisterRollsBackOnBadProduct(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	seller := addTestSeller(t, store, "Maria Souza")
	pa := addTestProduct(t, store, "Coxinha", 10.00, seller.ID)

	// Second item references a product that does not exist; the foreign
	// key failure must undo the header and the first item as well.
	_, err := store.SaleStore().Register(context.Background(),
		domain.Sale{Reference: "ref-bad", SellerID: seller.ID, Total: 25.00, CreatedAt: time.Now().UTC()},
		[]domain.SaleItem{
			{ProductCode: pa.Code, Quantity: 2, UnitPrice: 10.00},
			{ProductCode: "PROD-9999", Quantity: 1, UnitPrice: 5.00},
		},
		[]domain.Payment{{Method: domain.PaymentCash, Amount: 25.00}})
	require.Error(t, err)

	assert.Equal(t, 0, countRows(t, store, "sales"))
	assert.Equal(t, 0, countRows(t, store, "sale_items"))
	assert.Equal(t, 0, countRows(t, store, "sale_payments"))
}

func TestSaleStore_RegisterRollsBackOnUnknownSeller(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	seller := addTestSeller(t, store, "Maria Souza")
	pa := addTestProduct(t, store, "Coxinha", 10.00, seller.ID)

	_, err := store.SaleStore().Register(context.Background(),
		domain.Sale{Reference: "ref-x", SellerID: 99, Total: 10.00, CreatedAt: time.Now().UTC()},
		[]domain.SaleItem{{ProductCode: pa.Code, Quantity: 1, UnitPrice: 10.00}},
		[]domain.Payment{{Method: domain.PaymentPix, Amount: 10.00}})
	require.Error(t, err)

	assert.Equal(t, 0, countRows(t, store, "sales"))
}

func TestSaleStore_ListNewestFirst(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	seller := addTestSeller(t, store, "Maria Souza")
	pa := addTestProduct(t, store, "Coxinha", 10.00, seller.ID)
	pb := addTestProduct(t, store, "Refrigerante", 5.00, seller.ID)

	registerTestSale(t, store, seller.ID, pa.Code, pb.Code)
	registerTestSale(t, store, seller.ID, pb.Code, pa.Code)

	sales, err := store.SaleStore().List(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, int64(2), sales[0].ID)
	assert.Equal(t, int64(1), sales[1].ID)
	assert.Equal(t, "Maria Souza", sales[0].SellerName)
	assert.False(t, sales[0].CreatedAt.IsZero())
}

func TestSaleStore_ClearHistoryLeavesCatalog(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	seller := addTestSeller(t, store, "Maria Souza")
	pa := addTestProduct(t, store, "Coxinha", 10.00, seller.ID)
	pb := addTestProduct(t, store, "Refrigerante", 5.00, seller.ID)
	registerTestSale(t, store, seller.ID, pa.Code, pb.Code)

	require.NoError(t, store.SaleStore().ClearHistory(ctx))

	assert.Equal(t, 0, countRows(t, store, "sales"))
	assert.Equal(t, 0, countRows(t, store, "sale_items"))
	assert.Equal(t, 0, countRows(t, store, "sale_payments"))
	assert.Equal(t, 1, countRows(t, store, "sellers"))
	assert.Equal(t, 2, countRows(t, store, "products"))
}

func TestSaleStore_SummaryEmpty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	summaries, err := store.SaleStore().Summary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestSaleStore_SummaryAggregatesPerSeller(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	zilda := addTestSeller(t, store, "Zilda Prado")
	ana := addTestSeller(t, store, "Ana Braga")
	coxinha := addTestProduct(t, store, "Coxinha", 10.00, zilda.ID)
	refri := addTestProduct(t, store, "Refrigerante", 5.00, zilda.ID)

	// Two sales for Zilda, one for Ana.
	registerTestSale(t, store, zilda.ID, coxinha.Code, refri.Code)

	_, err := store.SaleStore().Register(ctx,
		domain.Sale{Reference: "ref-2", SellerID: zilda.ID, Total: 20.00, CreatedAt: time.Now().UTC()},
		[]domain.SaleItem{{ProductCode: coxinha.Code, Quantity: 2, UnitPrice: 10.00}},
		[]domain.Payment{{Method: domain.PaymentCredit, Amount: 20.00}})
	require.NoError(t, err)

	_, err = store.SaleStore().Register(ctx,
		domain.Sale{Reference: "ref-3", SellerID: ana.ID, Total: 5.00, CreatedAt: time.Now().UTC()},
		[]domain.SaleItem{{ProductCode: refri.Code, Quantity: 1, UnitPrice: 5.00}},
		[]domain.Payment{{Method: domain.PaymentCash, Amount: 5.00}})
	require.NoError(t, err)

	summaries, err := store.SaleStore().Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Alphabetical by seller name.
	assert.Equal(t, "Ana Braga", summaries[0].SellerName)
	assert.InDelta(t, 5.00, summaries[0].Total, 0.0001)

	zs := summaries[1]
	assert.Equal(t, "Zilda Prado", zs.SellerName)
	assert.InDelta(t, 45.00, zs.Total, 0.0001)

	// Products ordered by name with summed quantities.
	require.Len(t, zs.Products, 2)
	assert.Equal(t, "Coxinha", zs.Products[0].ProductName)
	assert.Equal(t, int64(4), zs.Products[0].Quantity)
	assert.Equal(t, "Refrigerante", zs.Products[1].ProductName)
	assert.Equal(t, int64(1), zs.Products[1].Quantity)

	// Payment methods ordered by name with summed amounts.
	require.Len(t, zs.Payments, 2)
	assert.Equal(t, "cash", zs.Payments[0].Method)
	assert.InDelta(t, 25.00, zs.Payments[0].Amount, 0.0001)
	assert.Equal(t, "credit", zs.Payments[1].Method)
	assert.InDelta(t, 20.00, zs.Payments[1].Amount, 0.0001)
}
