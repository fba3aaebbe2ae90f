// Package services implements the driving ports: the business rules
// between the CLI adapter and the stores. Services normalize input,
// enforce the sale invariants and translate nothing — store errors are
// already domain sentinels by the time they arrive here.
package services
