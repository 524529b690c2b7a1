package storage

import (
	"Warbler/internal/api/config"
	"context"
	"fmt"
	"io"
	log "log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore 基于 MinIO 的存储，URL 使用外部访问地址
type MinioStore struct {
	client *minio.Client
	bucket string
	cfg    config.MinIOConfig
}

// NewMinioStore 优先使用内网地址连接，并确保主存储桶存在
func NewMinioStore(ctx context.Context, cfg config.MinIOConfig) (*MinioStore, error) {
	var endpoint string
	var useSSL bool
	if cfg.InternalEndpoint != "" {
		endpoint = cfg.InternalEndpoint
		useSSL = cfg.InternalUseSSL
	} else {
		endpoint = cfg.ExternalEndpoint
		useSSL = true
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MainBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.MainBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.MainBucket, err)
		}
		log.Info("MinIO bucket created", "bucket", cfg.MainBucket)
	}

	return &MinioStore{client: client, bucket: cfg.MainBucket, cfg: cfg}, nil
}

func (s *MinioStore) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (*Object, error) {
	info, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}
	return &Object{Key: info.Key, URL: s.publicURL(info.Key)}, nil
}

func (s *MinioStore) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *MinioStore) publicURL(key string) string {
	endpoint := s.cfg.ExternalEndpoint
	protocol := "https"
	if endpoint == "" {
		endpoint = s.cfg.InternalEndpoint
		if !s.cfg.InternalUseSSL {
			protocol = "http"
		}
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, endpoint, s.bucket, key)
}
