package sftp

import (
	"context"
	"io"
	"log/slog"
	"net"

	"github.com/bornholm/civicadmin/internal/filesystem"
	"github.com/bornholm/civicadmin/internal/filesystem/backend/local"
	"github.com/bornholm/go-x/slogx"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"github.com/pkg/sftp"
	"github.com/spf13/afero"
	"github.com/spf13/afero/sftpfs"
	"golang.org/x/crypto/ssh"
)

type Backend struct {
	addr     string
	basePath string
	config   *ssh.ClientConfig
}

// Put implements filesystem.Backend.
func (b *Backend) Put(ctx context.Context, name string, r io.Reader) error {
	sshClient, err := ssh.Dial("tcp", b.addr, b.config)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := sshClient.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			err = errors.WithStack(err)
			sentry.CaptureException(err)
			slog.ErrorContext(ctx, "could not close ssh connection", slogx.Error(err))
		}
	}()

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := sftpClient.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			err = errors.WithStack(err)
			sentry.CaptureException(err)
			slog.ErrorContext(ctx, "could not close sftp connection", slogx.Error(err))
		}
	}()

	var fs afero.Fs = sftpfs.New(sftpClient)

	if b.basePath != "" {
		fs = afero.NewBasePathFs(fs, b.basePath)
	}

	if err := local.Put(ctx, fs, name, r); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func New(addr string, basePath string, config *ssh.ClientConfig) *Backend {
	return &Backend{
		addr:     addr,
		config:   config,
		basePath: basePath,
	}
}

var _ filesystem.Backend = &Backend{}
