package smb

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"
	"path"
	"strings"

	"github.com/bornholm/civicadmin/internal/filesystem"
	"github.com/bornholm/civicadmin/internal/filesystem/backend"
	"github.com/bornholm/go-x/slogx"
	"github.com/getsentry/sentry-go"
	"github.com/hirochachacha/go-smb2"
	"github.com/pkg/errors"
)

type Backend struct {
	addr     string
	basePath string
	config   *Config
}

type Config struct {
	Initiator smb2.Initiator
	ShareName string
}

// Put implements filesystem.Backend.
func (b *Backend) Put(ctx context.Context, name string, r io.Reader) error {
	name, err := backend.CleanName(name)
	if err != nil {
		return errors.WithStack(err)
	}

	name = backend.Join(b.basePath, name)

	var dialer net.Dialer

	conn, err := dialer.DialContext(ctx, "tcp", b.addr)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			err = errors.WithStack(err)
			sentry.CaptureException(err)
			slog.ErrorContext(ctx, "could not close smb connection", slogx.Error(err))
		}
	}()

	smbDialer := &smb2.Dialer{
		Initiator: b.config.Initiator,
	}

	session, err := smbDialer.DialContext(ctx, conn)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := session.Logoff(); err != nil {
			var contextErr *smb2.ContextError
			if errors.As(err, &contextErr) {
				return
			}

			err = errors.WithStack(err)
			sentry.CaptureException(err)
			slog.ErrorContext(ctx, "could not logout samba session", slogx.Error(err))
		}
	}()

	share, err := session.Mount(b.config.ShareName)
	if err != nil {
		return errors.WithStack(err)
	}

	share = share.WithContext(ctx)

	defer func() {
		if err := share.Umount(); err != nil {
			err = errors.WithStack(err)
			sentry.CaptureException(err)
			slog.ErrorContext(ctx, "could not unmount samba share", slogx.Error(err))
		}
	}()

	// smb paths use backslashes
	smbName := toSMBPath(name)

	if dir := path.Dir(name); dir != "." {
		if err := share.MkdirAll(toSMBPath(dir), os.ModePerm); err != nil {
			return errors.Wrapf(err, "could not create directory '%s'", dir)
		}
	}

	file, err := share.Create(smbName)
	if err != nil {
		return errors.Wrapf(err, "could not create file '%s'", name)
	}

	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		return errors.Wrapf(err, "could not write file '%s'", name)
	}

	if err := file.Close(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func toSMBPath(name string) string {
	return strings.ReplaceAll(name, "/", `\`)
}

func New(addr string, basePath string, config *Config) *Backend {
	return &Backend{
		addr:     addr,
		basePath: basePath,
		config:   config,
	}
}

var _ filesystem.Backend = &Backend{}
