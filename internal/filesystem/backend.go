package filesystem

import (
	"context"
	"io"
)

// Backend is a place reports can be published to.
type Backend interface {
	// Put writes the content read from r to the file name, relative to the
	// backend root. Missing parent directories are created.
	Put(ctx context.Context, name string, r io.Reader) error
}
