// Package file provides the TOML-backed application configuration store.
// It holds machine-local preferences (database directory, report output
// directory), not business data; fee rates and other business settings
// live in the database itself.
package file
