package importer

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// FormatFromFilename guesses the format of a tabular file from its extension.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "unexpected file extension '%s'", filepath.Ext(filename))
	}
}
