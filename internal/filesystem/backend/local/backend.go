package local

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/bornholm/civicadmin/internal/filesystem"
	"github.com/bornholm/civicadmin/internal/filesystem/backend"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type Backend struct {
	fs afero.Fs
}

// Put implements filesystem.Backend.
func (b *Backend) Put(ctx context.Context, name string, r io.Reader) error {
	return Put(ctx, b.fs, name, r)
}

// Put writes r to name on any afero filesystem.
func Put(ctx context.Context, fs afero.Fs, name string, r io.Reader) error {
	name, err := backend.CleanName(name)
	if err != nil {
		return errors.WithStack(err)
	}

	if dir := path.Dir(name); dir != "." {
		if err := fs.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.Wrapf(err, "could not create directory '%s'", dir)
		}
	}

	if err := afero.WriteReader(fs, name, r); err != nil {
		return errors.Wrapf(err, "could not write file '%s'", name)
	}

	slog.DebugContext(ctx, "file written", slog.String("name", name), slog.String("fs", fs.Name()))

	return nil
}

func New(basePath string) *Backend {
	return NewWithFs(afero.NewBasePathFs(afero.NewOsFs(), basePath))
}

func NewWithFs(fs afero.Fs) *Backend {
	return &Backend{
		fs: fs,
	}
}

var _ filesystem.Backend = &Backend{}
