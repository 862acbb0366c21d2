package importer

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// readRows returns every row of the first sheet (xlsx) or of the file (csv).
func readRows(r io.Reader, format Format) ([][]string, error) {
	switch format {
	case FormatCSV:
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true

		rows, err := reader.ReadAll()
		if err != nil {
			return nil, errors.Wrap(err, "could not read csv file")
		}

		return rows, nil

	case FormatXLSX:
		file, err := excelize.OpenReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "could not open xlsx file")
		}

		defer file.Close()

		sheets := file.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("xlsx file has no sheet")
		}

		rows, err := file.GetRows(sheets[0])
		if err != nil {
			return nil, errors.Wrapf(err, "could not read sheet '%s'", sheets[0])
		}

		return rows, nil

	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "unexpected format '%s'", format)
	}
}

// header maps lower-cased column names to their index.
type header map[string]int

func newHeader(row []string) header {
	h := header{}
	for idx, name := range row {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if name == "" {
			continue
		}
		h[name] = idx
	}
	return h
}

func (h header) missing(columns ...string) []string {
	missing := make([]string, 0)
	for _, c := range columns {
		if _, exists := h[c]; !exists {
			missing = append(missing, c)
		}
	}
	return missing
}

func (h header) get(row []string, column string) string {
	idx, exists := h[column]
	if !exists || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
