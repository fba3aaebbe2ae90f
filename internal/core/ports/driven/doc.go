// Package driven defines the driven ports (secondary adapters' interfaces)
// for vendas-cli: the persistence contracts the core depends on. Concrete
// implementations live under internal/adapters/driven.
package driven
