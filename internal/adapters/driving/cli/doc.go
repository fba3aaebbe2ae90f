// Package cli implements the vendas command tree. Commands talk to the
// core services through the driving ports; the services and the store
// are wired once in the root command's PersistentPreRun.
package cli
