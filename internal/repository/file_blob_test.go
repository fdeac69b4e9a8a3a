package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBlobStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileBlobStore(filepath.Join(dir, "nested"))
	require.NoError(t, err)

	_, err = store.Get(ctx, "mathtutor_data_tr_v2")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	require.NoError(t, store.Put(ctx, "mathtutor_data_tr_v2", []byte(`{"students":[]}`)))
	got, err := store.Get(ctx, "mathtutor_data_tr_v2")
	require.NoError(t, err)
	assert.Equal(t, `{"students":[]}`, string(got))

	require.NoError(t, store.Put(ctx, "mathtutor_data_tr_v2", []byte(`{}`)))
	got, err = store.Get(ctx, "mathtutor_data_tr_v2")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(got))

	// временные файлы не остаются в каталоге
	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, store.Delete(ctx, "mathtutor_data_tr_v2"))
	require.NoError(t, store.Delete(ctx, "mathtutor_data_tr_v2"))
	_, err = store.Get(ctx, "mathtutor_data_tr_v2")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestFileBlobStoreSanitizesKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileBlobStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "../escape/key", []byte("x")))

	_, err = os.Stat(filepath.Join(dir, ".._escape_key.json"))
	assert.NoError(t, err)
}
