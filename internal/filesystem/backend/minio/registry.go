package minio

import (
	"net/url"

	"github.com/bornholm/civicadmin/internal/filesystem"
	"github.com/bornholm/civicadmin/internal/filesystem/backend"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

func init() {
	backend.RegisterBackendFactory("minio", FromDSN)
}

// FromDSN creates a backend from a DSN like
// minio://<key>:<secret>@<host>/<prefix>?bucket=reports&region=us-east-1&secure
func FromDSN(dsn *url.URL) (filesystem.Backend, error) {
	params := backend.NewParams(dsn)

	options := &minio.Options{
		Region: params.String("region", "us-east-1"),
		Secure: params.Bool("secure"),
	}

	bucket := params.String("bucket", "reports")
	token := params.String("token", "")

	if key, secret := params.User(); key != "" {
		options.Creds = credentials.NewStaticV4(key, secret, token)
	}

	if err := params.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	client, err := minio.New(dsn.Host, options)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return New(client, bucket, options.Region, params.BasePath()), nil
}
