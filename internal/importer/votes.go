package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/validate"
	"github.com/pkg/errors"
)

const (
	ColumnBillName   = "bill_name"
	ColumnBillNumber = "bill_number"
	ColumnVote       = "vote"
	ColumnDate       = "date"
	ColumnCategory   = "category"
	ColumnSummary    = "summary"
	ColumnSourceURL  = "source_url"
)

var VotingRecordColumns = []string{
	ColumnBillName,
	ColumnBillNumber,
	ColumnVote,
	ColumnDate,
	ColumnCategory,
	ColumnSummary,
	ColumnSourceURL,
}

var ErrMissingColumns = errors.New("missing columns")

// Row is a parsed line of an import file. Line is 1-based and counts the
// header row.
type Row[T any] struct {
	Line int
	Item T
	Err  error
}

type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Err.Error())
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Valid splits rows into parsed items and row errors.
func Valid[T any](rows []Row[T]) ([]T, []*RowError) {
	items := make([]T, 0, len(rows))
	failures := make([]*RowError, 0)

	for _, r := range rows {
		if r.Err != nil {
			failures = append(failures, &RowError{Line: r.Line, Err: r.Err})
			continue
		}
		items = append(items, r.Item)
	}

	return items, failures
}

// ReadVotingRecords parses voting records of a politician from a tabular
// file. Rows failing validation are returned with their error, blank rows
// are skipped.
func ReadVotingRecords(r io.Reader, format Format, politicianID model.PoliticianID) ([]Row[model.VotingRecord], error) {
	rows, err := readRows(r, format)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(rows) == 0 {
		return nil, errors.Wrap(ErrMissingColumns, "file is empty")
	}

	h := newHeader(rows[0])

	if missing := h.missing(ColumnBillName, ColumnVote, ColumnDate); len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingColumns, "expected columns %s", strings.Join(missing, ", "))
	}

	records := make([]Row[model.VotingRecord], 0, len(rows)-1)

	for idx, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		line := idx + 2

		record := model.VotingRecord{
			PoliticianID: politicianID,
			BillName:     h.get(row, ColumnBillName),
			BillNumber:   h.get(row, ColumnBillNumber),
			Vote:         model.VoteChoice(strings.ToLower(h.get(row, ColumnVote))),
			Category:     h.get(row, ColumnCategory),
			Summary:      h.get(row, ColumnSummary),
			SourceURL:    h.get(row, ColumnSourceURL),
		}

		date, err := model.ParseDate(h.get(row, ColumnDate))
		if err != nil {
			records = append(records, Row[model.VotingRecord]{Line: line, Item: record, Err: validate.Errors{ColumnDate: "must be a date formatted as YYYY-MM-DD"}})
			continue
		}

		record.Date = date

		var rowErr error
		if errs := validate.VotingRecord(&record); !errs.Empty() {
			rowErr = errs
		}

		records = append(records, Row[model.VotingRecord]{Line: line, Item: record, Err: rowErr})
	}

	return records, nil
}
