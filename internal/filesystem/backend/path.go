package backend

import (
	"path"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidName = errors.New("invalid file name")

// CleanName returns name as a slash separated path relative to the
// backend root. Names escaping the root are rejected.
func CleanName(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")

	for _, segment := range strings.Split(name, "/") {
		if segment == ".." {
			return "", errors.Wrapf(ErrInvalidName, "'%s' is outside of the backend root", name)
		}
	}

	cleaned := strings.TrimPrefix(path.Clean("/"+name), "/")
	if cleaned == "" {
		return "", errors.Wrapf(ErrInvalidName, "'%s'", name)
	}

	return cleaned, nil
}

// Join prefixes name with the base path of a backend.
func Join(basePath string, name string) string {
	if basePath == "" {
		return name
	}

	return path.Join(basePath, name)
}
