// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements multiple store interfaces
// through a single database connection:
//
//   - SellerStore: Seller registry persistence
//   - ProductStore: Product catalog persistence with generated codes
//   - SaleStore: Atomic sale registration, history and report aggregation
//   - SettingStore: Key-value settings (fee rates)
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.vendas/data/vendas.db
//
// # Error Mapping
//
// Driver-level constraint violations are translated to domain sentinels:
// unique violations become domain.ErrAlreadyExists, foreign key violations
// on delete become domain.ErrInUse. Callers never see raw SQLite errors.
package sqlite
