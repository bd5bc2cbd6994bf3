package kvstore_test

import (
	"path/filepath"
	"testing"

	"github.com/nikolayk812/storefront-client/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite(t *testing.T) {
	kv, err := kvstore.OpenSQLite(t.Context(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	testKeyValueStore(t, kv)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "state.db")

	kv, err := kvstore.OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "mode", "dark"))
	require.NoError(t, kv.Close())

	kv, err = kvstore.OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	value, ok, err := kv.Get(ctx, "mode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestOpenSQLite_Error(t *testing.T) {
	_, err := kvstore.OpenSQLite(t.Context(), "")
	require.Error(t, err)
}
