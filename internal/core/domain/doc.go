// Package domain defines the core business entities for vendas-cli.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Seller: A registered salesperson
//   - Product: A sellable item with a generated PROD-XXXX code
//   - Sale: A completed transaction with line items and payments
//   - SaleDraft: A sale as submitted by the operator, before persistence
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
