package minio

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"

	"github.com/bornholm/civicadmin/internal/filesystem"
	"github.com/bornholm/civicadmin/internal/filesystem/backend"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Backend struct {
	basePath string
	bucket   string
	region   string
	client   *minio.Client
}

// Put implements filesystem.Backend.
func (b *Backend) Put(ctx context.Context, name string, r io.Reader) error {
	name, err := backend.CleanName(name)
	if err != nil {
		return errors.WithStack(err)
	}

	key := backend.Join(b.basePath, name)

	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return errors.WithStack(err)
	}

	if !exists {
		if err := b.client.MakeBucket(ctx, b.bucket, minio.MakeBucketOptions{Region: b.region}); err != nil {
			return errors.Wrapf(err, "could not create bucket '%s'", b.bucket)
		}
	}

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := b.client.PutObject(ctx, b.bucket, key, r, -1, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "could not upload object '%s'", key)
	}

	slog.DebugContext(ctx, "object uploaded", slog.String("bucket", b.bucket), slog.String("key", key), slog.Int64("size", info.Size))

	return nil
}

func New(client *minio.Client, bucket string, region string, basePath string) *Backend {
	return &Backend{
		bucket:   bucket,
		region:   region,
		client:   client,
		basePath: strings.Trim(basePath, "/"),
	}
}

var _ filesystem.Backend = &Backend{}
