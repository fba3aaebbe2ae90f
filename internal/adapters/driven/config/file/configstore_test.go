package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfigStore(t *testing.T) *ConfigStore {
	t.Helper()

	dir, err := os.MkdirTemp("", "vendas-config-*")
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, os.RemoveAll(dir)) })

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	return store
}

func TestConfigStore_Path(t *testing.T) {
	store := newTestConfigStore(t)
	assert.Equal(t, "config.toml", filepath.Base(store.Path()))
}

func TestConfigStore_SetPersistsImmediately(t *testing.T) {
	store := newTestConfigStore(t)

	require.NoError(t, store.Set(KeyDatabaseDir, "/tmp/vendas"))
	assert.FileExists(t, store.Path())

	// A fresh store over the same directory sees the value.
	reloaded, err := NewConfigStore(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/vendas", reloaded.GetString(KeyDatabaseDir))
}

func TestConfigStore_MissingKeysHaveZeroValues(t *testing.T) {
	store := newTestConfigStore(t)

	assert.Equal(t, "", store.GetString(KeyReportDir))
	assert.False(t, store.GetBool(KeyVerbose))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := newTestConfigStore(t)

	require.NoError(t, store.Set(KeyVerbose, true))
	assert.True(t, store.GetBool(KeyVerbose))
}

func TestConfigStore_TypeMismatchIsZeroValue(t *testing.T) {
	store := newTestConfigStore(t)

	require.NoError(t, store.Set(KeyVerbose, "yes"))
	assert.False(t, store.GetBool(KeyVerbose))
	assert.Equal(t, "yes", store.GetString(KeyVerbose))
}
