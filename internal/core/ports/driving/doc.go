// Package driving defines the driving ports (primary interfaces) for
// vendas-cli: the operations offered to user-facing adapters such as the
// CLI. Implementations live in internal/core/services.
package driving
