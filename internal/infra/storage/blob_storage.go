// Package storage keeps user uploads in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ecospot/config"
	"ecospot/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets in production
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
)

// blobStorage implements ObjectStorage on a gocloud.dev bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	signedExpiry  time.Duration
}

// Params holds dependencies for ObjectStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by storage.bucketUrl.
func New(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Object storage opened", slog.String("bucket", cfg.BucketURL))
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, cfg.PublicBaseURL, cfg.SignedURLExpiry), nil
}

// NewBlobStorage wraps an open bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, signedExpiry time.Duration) service.ObjectStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		signedExpiry:  signedExpiry,
	}
}

// Put overwrites the object at key and returns its download URL.
func (s *blobStorage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key, nil
	}

	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{Expiry: s.signedExpiry})
	if err != nil {
		return "", errors.Wrap(err, "bucket cannot sign URLs, set storage.publicBaseUrl")
	}

	return url, nil
}
