package ftp

import (
	"net/url"
	"time"

	"github.com/bornholm/civicadmin/internal/filesystem"
	"github.com/bornholm/civicadmin/internal/filesystem/backend"
	"github.com/jlaffaye/ftp"
	"github.com/pkg/errors"
)

func init() {
	backend.RegisterBackendFactory("ftp", FromDSN)
}

// FromDSN creates a backend from a DSN like
// ftp://<user>:<password>@<host>:21/<path>?timeout=10s
func FromDSN(dsn *url.URL) (filesystem.Backend, error) {
	params := backend.NewParams(dsn)

	timeout := params.Duration("timeout", 30*time.Second)
	username, password := params.User()

	if err := params.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return New(dsn.Host, params.BasePath(), username, password, ftp.DialWithTimeout(timeout)), nil
}
