package domain

// Seller is a registered salesperson. Names are stored trimmed and
// title-cased, and are unique across the store.
type Seller struct {
	ID   int64
	Name string
}
