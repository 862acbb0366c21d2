package settings

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/bornholm/go-x/slogx"
	"github.com/kirsle/configdir"
	"github.com/pkg/errors"
)

const AppName = "civicadmin"

// Store persists a settings document as JSON under the user configuration
// directory. Writes go through a temporary file and an atomic rename.
type Store[T any] struct {
	defaults T
	settings *T
	mutex    sync.RWMutex
	dir      string
}

func (s *Store[T]) Save(settings T) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.ensureDir(); err != nil {
		return errors.WithStack(err)
	}

	file, err := os.OpenFile(s.Path()+"-new", os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0600)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			slog.Error("could not close settings file", slogx.Error(errors.WithStack(err)))
		}

		if err := os.Remove(file.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Error("could not remove temporary settings file", slogx.Error(errors.WithStack(err)))
		}
	}()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(settings); err != nil {
		return errors.WithStack(err)
	}

	if err := file.Sync(); err != nil {
		return errors.WithStack(err)
	}

	if err := os.Rename(file.Name(), s.Path()); err != nil {
		return errors.Wrap(err, "could not overwrite settings")
	}

	s.settings = &settings

	return nil
}

// Get returns the cached settings, reading the file on first use or when
// reload is set.
func (s *Store[T]) Get(reload bool) (T, error) {
	if !reload {
		s.mutex.RLock()
		if s.settings != nil {
			defer s.mutex.RUnlock()
			return *s.settings, nil
		}
		s.mutex.RUnlock()
	}

	settings, err := s.Reload()
	if err != nil {
		return s.defaults, errors.WithStack(err)
	}

	return settings, nil
}

func (s *Store[T]) Reload() (T, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	file, err := os.Open(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.settings = &s.defaults
			return s.defaults, nil
		}

		return s.defaults, errors.WithStack(err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("could not close settings file", slogx.Error(errors.WithStack(err)))
		}
	}()

	decoder := json.NewDecoder(file)

	var settings T
	if err := decoder.Decode(&settings); err != nil {
		return s.defaults, errors.Wrapf(err, "could not decode settings file '%s'", s.Path())
	}

	s.settings = &settings

	return settings, nil
}

func (s *Store[T]) ensureDir() error {
	if err := configdir.MakePath(s.dir); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Store[T]) Path() string {
	return filepath.Join(s.dir, "settings.json")
}

// NewStore returns a store located in the user configuration directory.
func NewStore[T any](defaults T) *Store[T] {
	return NewStoreAt(configdir.LocalConfig(AppName), defaults)
}

func NewStoreAt[T any](dir string, defaults T) *Store[T] {
	return &Store[T]{
		defaults: defaults,
		dir:      dir,
	}
}
