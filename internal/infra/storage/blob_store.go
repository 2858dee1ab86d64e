// Package storage implements the on-device key-value store on top of a
// gocloud.dev blob bucket: file:// on a device, mem:// in tests.
package storage

import (
	"context"
	"log/slog"

	"sitesnap/internal/domain/repository"
	"sitesnap/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// DefaultBucketURL keeps data in memory. Point it at file:///some/dir to
// persist across runs.
const DefaultBucketURL = "mem://"

type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// OpenBucket opens the bucket behind url.
func OpenBucket(ctx context.Context, url string) (*blob.Bucket, error) {
	if url == "" {
		url = DefaultBucketURL
	}

	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", url)
	}

	return bucket, nil
}

// NewBlobStore wraps bucket as a KeyValueRepository. The caller owns the
// bucket and closes it.
func NewBlobStore(bucket *blob.Bucket, logger *slog.Logger) repository.KeyValueRepository {
	return &blobStore{bucket: bucket, logger: logger}
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return data, nil
}

func (s *blobStore) Set(ctx context.Context, key string, value []byte) error {
	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := s.bucket.WriteAll(ctx, key, value, opts); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

func (s *blobStore) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := s.bucket.Delete(ctx, key); err != nil {
			if gcerrors.Code(err) == gcerrors.NotFound {
				continue
			}

			return errors.Wrapf(err, "failed to delete %s", key)
		}
		s.logger.Debug("[Storage] Deleted key", slog.String("key", key))
	}

	return nil
}
