package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryProvider().ForSession("s1")

	data, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, storage.Save(ctx, []byte(`[{"id":"p1"}]`)))
	data, err = storage.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"p1"}]`), data)

	require.NoError(t, storage.Clear(ctx))
	data, err = storage.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryProviderScopesSessions(t *testing.T) {
	ctx := context.Background()
	provider := NewMemoryProvider()

	first := provider.ForSession("s1")
	second := provider.ForSession("s2")

	require.NoError(t, first.Save(ctx, []byte("first")))

	data, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, data, "sessions must not see each other's carts")

	data, err = provider.ForSession("s1").Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)
}
