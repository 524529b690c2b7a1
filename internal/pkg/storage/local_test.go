package storage

import (
	"Warbler/internal/api/config"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	obj, err := store.Put(ctx, "2026/10/18/a.png", strings.NewReader("png-bytes"), 9, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "2026/10/18/a.png", obj.Key)
	assert.Equal(t, filepath.ToSlash(filepath.Join(dir, "2026", "10", "18", "a.png")), obj.URL)

	data, err := os.ReadFile(filepath.Join(dir, "2026", "10", "18", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Delete(ctx, obj.Key))
	_, err = os.Stat(filepath.Join(dir, "2026", "10", "18", "a.png"))
	assert.True(t, os.IsNotExist(err))

	// 重复删除不报错
	assert.NoError(t, store.Delete(ctx, obj.Key))
}

func TestNewBlobStore_UnknownDriver(t *testing.T) {
	_, err := NewBlobStore(context.Background(), storageConfig("s3", ""))
	assert.Error(t, err)
}

func TestNewBlobStore_Local(t *testing.T) {
	store, err := NewBlobStore(context.Background(), storageConfig(DriverLocal, t.TempDir()))
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)
}

func storageConfig(driver, dir string) config.StorageConfig {
	return config.StorageConfig{Driver: driver, LocalDir: dir}
}
