package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBlobStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewRedisBlobStore(client)

	_, err := store.Get(ctx, "mathtutor_auth_pin")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	require.NoError(t, store.Put(ctx, "mathtutor_auth_pin", []byte("hash")))
	got, err := store.Get(ctx, "mathtutor_auth_pin")
	require.NoError(t, err)
	assert.Equal(t, "hash", string(got))

	require.NoError(t, store.Delete(ctx, "mathtutor_auth_pin"))
	assert.False(t, mr.Exists("mathtutor_auth_pin"))
}
