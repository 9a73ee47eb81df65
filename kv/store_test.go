package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store, err := Open("")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Sync(ctx), "in-memory store has nothing to flush")

	value, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "b", "2"))
	require.NoError(t, store.Set(ctx, "a", "3"))

	value, err = store.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "3", *value)

	items, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "3", "b": "2"}, items)

	require.NoError(t, store.Remove(ctx, "a"))
	require.NoError(t, store.Remove(ctx, "a"))
	items, err = store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"b": "2"}, items)
}

func TestStore_Persistent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "k", "v"))
	require.NoError(t, store.Sync(ctx))
	require.NoError(t, store.Close())

	store, err = Open(dir)
	require.NoError(t, err)
	defer store.Close()
	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "v", *value)
}
