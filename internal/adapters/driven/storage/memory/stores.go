package memory

// Stores bundles one wired set of in-memory stores, with the
// referential checks between them installed the way the SQLite foreign
// keys behave.
type Stores struct {
	Sellers  *SellerStore
	Products *ProductStore
	Sales    *SaleStore
	Settings *SettingStore
}

// NewStores creates a fully wired set of in-memory stores.
func NewStores() *Stores {
	sellers := NewSellerStore()
	products := NewProductStore(sellers)
	sales := NewSaleStore(sellers, products)
	settings := NewSettingStore()

	sellers.SetReferenceCheck(func(sellerID int64) bool {
		return products.HasSeller(sellerID) || sales.HasSeller(sellerID)
	})
	products.SetReferenceCheck(sales.HasProduct)

	return &Stores{
		Sellers:  sellers,
		Products: products,
		Sales:    sales,
		Settings: settings,
	}
}
