package local

import (
	"net/url"

	"github.com/bornholm/civicadmin/internal/filesystem"
	"github.com/bornholm/civicadmin/internal/filesystem/backend"
	"github.com/pkg/errors"
)

func init() {
	backend.RegisterBackendFactory("local", FromDSN)
}

// FromDSN creates a backend from a DSN like local:///var/reports or
// local://reports for a path relative to the working directory.
func FromDSN(dsn *url.URL) (filesystem.Backend, error) {
	params := backend.NewParams(dsn)

	if err := params.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	root := dsn.Host + dsn.Path
	if root == "" {
		root = "."
	}

	return New(root), nil
}
