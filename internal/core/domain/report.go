package domain

// ProductTotal is a product's summed sold quantity within one seller's
// report section.
type ProductTotal struct {
	ProductName string
	Quantity    int64
}

// MethodTotal is a payment method's summed amount within one seller's
// report section.
type MethodTotal struct {
	Method string
	Amount float64
}

// SellerSummary aggregates one seller's sales for the report: distinct
// products sold with quantities, payment methods with amounts, and the
// seller's grand total.
type SellerSummary struct {
	SellerName string
	Products   []ProductTotal
	Payments   []MethodTotal
	Total      float64
}
