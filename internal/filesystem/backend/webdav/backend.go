package webdav

import (
	"context"
	"io"
	"os"
	"path"
	"time"

	"github.com/bornholm/civicadmin/internal/filesystem"
	"github.com/bornholm/civicadmin/internal/filesystem/backend"
	"github.com/pkg/errors"
	"github.com/studio-b12/gowebdav"
)

type Config struct {
	Username string
	Password string
	Timeout  time.Duration
}

type Backend struct {
	url    string
	config *Config
}

// Put implements filesystem.Backend.
func (b *Backend) Put(ctx context.Context, name string, r io.Reader) error {
	name, err := backend.CleanName(name)
	if err != nil {
		return errors.WithStack(err)
	}

	client := gowebdav.NewClient(b.url, b.config.Username, b.config.Password)
	client.SetTimeout(b.config.Timeout)

	if err := client.Connect(); err != nil {
		return errors.Wrap(err, "could not connect to webdav server")
	}

	if dir := path.Dir(name); dir != "." {
		if err := client.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.Wrapf(err, "could not create directory '%s'", dir)
		}
	}

	if err := client.WriteStream(name, r, 0644); err != nil {
		return errors.Wrapf(err, "could not write file '%s'", name)
	}

	return nil
}

func New(url string, config *Config) *Backend {
	return &Backend{
		url:    url,
		config: config,
	}
}

var _ filesystem.Backend = &Backend{}
