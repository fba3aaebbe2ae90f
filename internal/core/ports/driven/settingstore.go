package driven

import "context"

// SettingStore is the database-backed key-value store for application
// settings such as fee rates.
type SettingStore interface {
	// Get retrieves the value for a key. Returns domain.ErrNotFound
	// when the key is absent; defaulting is the service's concern.
	Get(ctx context.Context, key string) (string, error)

	// Set inserts or replaces the value for a key.
	Set(ctx context.Context, key, value string) error
}
