// Package storage persists uploaded assets (partner and site logos, report
// downloads) in a gocloud.dev blob bucket, so local disk and cloud object
// stores are interchangeable through the bucket URL.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"referidos/config"
	"referidos/internal/domain/lifecycle"
	"referidos/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Local filesystem driver; cloud drivers register the same way.
	_ "gocloud.dev/blob/fileblob"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StorageParams holds dependencies for the blob storage, injected by Fx.
type StorageParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and closes it on shutdown.
func NewBlobStorage(params StorageParams) (service.FileStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Storage.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Save writes data under key and returns the public URL of the object.
func (s *blobStorage) Save(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write blob %s", key)
	}

	s.logger.Debug("blob stored", "key", key, "bytes", len(data))

	return s.publicBaseURL + "/" + key, nil
}

// Load reads the object stored under key.
func (s *blobStorage) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read blob %s", key)
	}

	return data, nil
}
