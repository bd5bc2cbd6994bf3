package kvstore_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/storefront-client/internal/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testKeyValueStore checks the behaviour every backend shares. Keys are
// random so a store may be reused across runs.
func testKeyValueStore(t *testing.T, kv port.KeyValueStore) {
	t.Helper()

	t.Run("get absent: ok", func(t *testing.T) {
		value, ok, err := kv.Get(t.Context(), gofakeit.UUID())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("set then get: ok", func(t *testing.T) {
		ctx := t.Context()
		key := gofakeit.UUID()
		value := `{"name":"` + gofakeit.Name() + `"}`

		require.NoError(t, kv.Set(ctx, key, value))

		got, ok, err := kv.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, value, got)
	})

	t.Run("set overwrites: ok", func(t *testing.T) {
		ctx := t.Context()
		key := gofakeit.UUID()

		require.NoError(t, kv.Set(ctx, key, "light"))
		require.NoError(t, kv.Set(ctx, key, "dark"))

		got, ok, err := kv.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "dark", got)
	})

	t.Run("empty value is present: ok", func(t *testing.T) {
		ctx := t.Context()
		key := gofakeit.UUID()

		require.NoError(t, kv.Set(ctx, key, ""))

		_, ok, err := kv.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("remove: ok", func(t *testing.T) {
		ctx := t.Context()
		key := gofakeit.UUID()

		require.NoError(t, kv.Set(ctx, key, "v"))
		require.NoError(t, kv.Remove(ctx, key))
		require.NoError(t, kv.Remove(ctx, key))

		_, ok, err := kv.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("remove many: ok", func(t *testing.T) {
		ctx := t.Context()
		k1, k2, keep := gofakeit.UUID(), gofakeit.UUID(), gofakeit.UUID()

		for _, k := range []string{k1, k2, keep} {
			require.NoError(t, kv.Set(ctx, k, "v"))
		}

		require.NoError(t, kv.RemoveMany(ctx, []string{k1, k2, gofakeit.UUID()}))
		require.NoError(t, kv.RemoveMany(ctx, nil))

		for _, k := range []string{k1, k2} {
			_, ok, err := kv.Get(ctx, k)
			require.NoError(t, err)
			assert.False(t, ok, k)
		}

		_, ok, err := kv.Get(ctx, keep)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
