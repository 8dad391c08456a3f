package objectstore

import (
	"context"
	"fmt"
	"io"
	"time"

	"edoc-portal/config"
	"edoc-portal/internal/domain/repository"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const maxConnectAttempts = 5

type minioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage connects to MinIO, retrying with a growing delay, and makes
// sure the upload bucket exists.
func NewMinioStorage(ctx context.Context, cfg config.UploadConfig) (repository.ObjectStorage, error) {
	var (
		client *minio.Client
		err    error
	)
	for i := 0; i < maxConnectAttempts; i++ {
		client, err = minio.New(cfg.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
			Secure: cfg.MinioUseSSL,
		})
		if err == nil {
			break
		}
		logrus.WithError(err).WithField("attempt", i+1).Warn("Failed to create minio client, retrying")
		time.Sleep(time.Second * time.Duration(i+1))
	}
	if err != nil {
		return nil, fmt.Errorf("minio connection failed after %d attempts: %w", maxConnectAttempts, err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check bucket")
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrapf(err, "failed to create bucket %s", cfg.MinioBucket)
		}
		logrus.WithField("bucket", cfg.MinioBucket).Info("Created upload bucket")
	}

	return &minioStorage{client: client, bucket: cfg.MinioBucket}, nil
}

func (s *minioStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to store object %s", key)
	}
	return nil
}

func (s *minioStorage) Remove(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrapf(err, "failed to remove object %s", key)
	}
	return nil
}
