package webdav

import (
	"net/url"
	"time"

	"github.com/bornholm/civicadmin/internal/filesystem"
	"github.com/bornholm/civicadmin/internal/filesystem/backend"
	"github.com/pkg/errors"
)

func init() {
	backend.RegisterBackendFactory("webdav", FromDSN)
}

// FromDSN creates a backend from a DSN like
// webdav://<user>:<password>@<host>/<path>?tls&timeout=30s
func FromDSN(dsn *url.URL) (filesystem.Backend, error) {
	params := backend.NewParams(dsn)

	scheme := "http://"
	if params.Bool("tls") {
		scheme = "https://"
	}

	config := &Config{
		Timeout: params.Duration("timeout", 30*time.Second),
	}

	config.Username, config.Password = params.User()

	if err := params.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return New(scheme+dsn.Host+dsn.Path, config), nil
}
