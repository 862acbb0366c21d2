package bleve

import (
	"testing"

	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/port/testsuite"
	"github.com/pkg/errors"
)

func TestIndex(t *testing.T) {
	testsuite.TestIndex(t, func(t *testing.T) (port.Index, error) {
		index, err := NewMemoryIndex()
		if err != nil {
			return nil, errors.WithStack(err)
		}

		t.Cleanup(func() {
			index.Close()
		})

		return index, nil
	})
}
