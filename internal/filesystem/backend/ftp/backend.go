package ftp

import (
	"context"
	"io"
	"log/slog"
	"net/textproto"
	"path"
	"strings"

	"github.com/bornholm/civicadmin/internal/filesystem"
	"github.com/bornholm/civicadmin/internal/filesystem/backend"
	"github.com/bornholm/go-x/slogx"
	"github.com/jlaffaye/ftp"
	"github.com/pkg/errors"
)

type Backend struct {
	addr     string
	basePath string
	username string
	password string
	options  []ftp.DialOption
}

// Put implements filesystem.Backend.
func (b *Backend) Put(ctx context.Context, name string, r io.Reader) error {
	name, err := backend.CleanName(name)
	if err != nil {
		return errors.WithStack(err)
	}

	name = backend.Join(b.basePath, name)

	options := append([]ftp.DialOption{
		ftp.DialWithContext(ctx),
	}, b.options...)

	conn, err := ftp.Dial(b.addr, options...)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := conn.Quit(); err != nil {
			slog.ErrorContext(ctx, "could not quit ftp server", slogx.Error(errors.WithStack(err)))
		}
	}()

	if b.username != "" {
		if err := conn.Login(b.username, b.password); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := makeDirAll(conn, path.Dir(name)); err != nil {
		return errors.WithStack(err)
	}

	if err := conn.Stor(name, r); err != nil {
		return errors.Wrapf(err, "could not store file '%s'", name)
	}

	return nil
}

// makeDirAll creates every missing directory of dir. Existing directories
// are reported by servers with a 550 reply, which is ignored.
func makeDirAll(conn *ftp.ServerConn, dir string) error {
	if dir == "." || dir == "/" || dir == "" {
		return nil
	}

	current := ""
	if strings.HasPrefix(dir, "/") {
		current = "/"
	}

	for _, segment := range strings.Split(strings.Trim(dir, "/"), "/") {
		current = path.Join(current, segment)

		if err := conn.MakeDir(current); err != nil && !isFileUnavailable(err) {
			return errors.Wrapf(err, "could not create directory '%s'", current)
		}
	}

	return nil
}

func isFileUnavailable(err error) bool {
	var protoErr *textproto.Error
	if !errors.As(err, &protoErr) {
		return false
	}

	return protoErr.Code == ftp.StatusFileUnavailable
}

func New(addr string, basePath string, username, password string, options ...ftp.DialOption) *Backend {
	return &Backend{
		addr:     addr,
		basePath: basePath,
		username: username,
		password: password,
		options:  options,
	}
}

var _ filesystem.Backend = &Backend{}
