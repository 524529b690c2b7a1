package storage

import (
	"Warbler/internal/api/config"
	"context"
	"fmt"
	"io"
)

const (
	DriverLocal = "local"
	DriverMinIO = "minio"
)

// Object 已保存的文件，Key 用于删除，URL 对外展示
type Object struct {
	Key string
	URL string
}

// BlobStore 媒体文件存储
type BlobStore interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (*Object, error)
	Delete(ctx context.Context, key string) error
}

// NewBlobStore 按配置选择存储后端
func NewBlobStore(ctx context.Context, cfg config.StorageConfig) (BlobStore, error) {
	switch cfg.Driver {
	case DriverLocal, "":
		return NewLocalStore(cfg.LocalDir)
	case DriverMinIO:
		return NewMinioStore(ctx, cfg.MinIO)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
