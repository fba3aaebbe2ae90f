// Package memory provides in-memory implementations of the driven store
// ports. They honour the same error contracts as the SQLite adapter
// (ErrNotFound, ErrAlreadyExists, ErrInUse) and exist for fast, isolated
// service and CLI tests.
package memory
