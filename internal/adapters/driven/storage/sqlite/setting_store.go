package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/daetec/vendas-cli/internal/core/domain"
	"github.com/daetec/vendas-cli/internal/core/ports/driven"
)

// settingStore implements driven.SettingStore.
type settingStore struct {
	store *Store
}

var _ driven.SettingStore = (*settingStore)(nil)

// Get retrieves the value for a key.
func (s *settingStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.store.db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("reading setting: %w", err)
	}
	return value, nil
}

// Set inserts or replaces the value for a key.
func (s *settingStore) Set(ctx context.Context, key, value string) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing setting: %w", err)
	}
	return nil
}
