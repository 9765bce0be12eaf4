package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/mapyourmemory/memorymap/config"
	"github.com/mapyourmemory/memorymap/pkg/apperr"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore keeps uploads in an object store bucket. The bucket is created
// on startup if missing.
type MinioStore struct {
	client *minio.Client
	bucket string
	namer  *namer
}

func NewMinioStore(cfg config.MinIOConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	n, err := newNamer()
	if err != nil {
		return nil, err
	}
	return &MinioStore{client: client, bucket: cfg.BucketName, namer: n}, nil
}

func (s *MinioStore) Store(ctx context.Context, r io.Reader, originalName string) (string, error) {
	name := s.namer.next(originalName)
	_, err := s.client.PutObject(ctx, s.bucket, name, r, -1, minio.PutObjectOptions{
		ContentType: contentTypeFor(originalName),
	})
	if err != nil {
		return "", apperr.Storage("failed to store file", err)
	}
	return "/" + s.bucket + "/" + name, nil
}
