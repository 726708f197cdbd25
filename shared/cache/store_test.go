package cache_test

import (
	"context"
	"errors"
	"serenity/shared/cache"
	"serenity/shared/cache/cachetest"
	"serenity/shared/cache/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type view struct {
	Offset int    `json:"offset"`
	Status string `json:"status"`
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	memory := cachetest.NewMemory()
	store := cache.NewStore[view](memory, "view:", 60)

	_, found, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, "abc", view{Offset: 40, Status: "new"}))
	assert.True(t, memory.Has("view:abc"))

	got, found, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, view{Offset: 40, Status: "new"}, got)

	require.NoError(t, store.Delete(ctx, "abc"))
	assert.False(t, memory.Has("view:abc"))
}

func TestStore_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), "view:abc", gomock.Any()).Return(errors.New("connection refused"))

	store := cache.NewStore[view](mockCache, "view:", 60)
	_, found, err := store.Load(context.Background(), "abc")

	assert.Error(t, err)
	assert.False(t, found)
}
