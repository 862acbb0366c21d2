package setup

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/bornholm/civicadmin/internal/config"
	"github.com/bornholm/civicadmin/internal/filesystem"
	"github.com/bornholm/civicadmin/internal/filesystem/backend"
	"github.com/pkg/errors"

	_ "github.com/bornholm/civicadmin/internal/filesystem/backend/ftp"
	_ "github.com/bornholm/civicadmin/internal/filesystem/backend/local"
	_ "github.com/bornholm/civicadmin/internal/filesystem/backend/minio"
	_ "github.com/bornholm/civicadmin/internal/filesystem/backend/sftp"
	_ "github.com/bornholm/civicadmin/internal/filesystem/backend/smb"
	_ "github.com/bornholm/civicadmin/internal/filesystem/backend/webdav"
)

// NewReportBackendFromConfig opens the report destination. The configured
// destination is used when dsn is empty. The dsn scheme is returned along
// the backend.
func NewReportBackendFromConfig(ctx context.Context, conf *config.Config, dsn string) (filesystem.Backend, string, error) {
	if dsn == "" {
		dsn = conf.Report.Destination
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return nil, "", errors.Wrapf(err, "could not parse destination '%s'", backend.Redact(dsn))
	}

	b, err := backend.New(dsn)
	if err != nil {
		return nil, "", errors.Wrapf(err, "could not open destination '%s'", backend.Redact(dsn))
	}

	slog.DebugContext(ctx, "using report destination", slog.String("destination", backend.Redact(dsn)))

	return b, parsed.Scheme, nil
}
