package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

func renderJSON(w io.Writer, report *Report) error {
	var payload any = report.Data
	if payload == nil {
		payload = struct {
			Title       string    `json:"title"`
			GeneratedAt time.Time `json:"generatedAt"`
			Facts       []Fact    `json:"facts"`
			Tables      []*Table  `json:"tables"`
		}{report.Title, report.GeneratedAt, report.Facts, report.Tables}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(payload); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// renderCSV writes every table one after the other. Each table starts with
// its header row and is separated from the next one by an empty line.
func renderCSV(w io.Writer, report *Report) error {
	writer := csv.NewWriter(w)

	for idx, t := range report.Tables {
		if idx > 0 {
			if err := writer.Write([]string{}); err != nil {
				return errors.WithStack(err)
			}
		}

		if err := writer.Write(t.Columns); err != nil {
			return errors.WithStack(err)
		}

		if err := writer.WriteAll(t.Rows); err != nil {
			return errors.WithStack(err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

const summarySheet = "Summary"

var excelizeSheetReplacer = strings.NewReplacer(
	":", " ",
	"\\", " ",
	"/", " ",
	"?", " ",
	"*", " ",
	"[", "(",
	"]", ")",
)

// renderXLSX writes a summary sheet with the facts, then one sheet per
// table.
func renderXLSX(w io.Writer, report *Report) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), summarySheet); err != nil {
		return errors.WithStack(err)
	}

	bold, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.WithStack(err)
	}

	summary := [][]string{{report.Title, ""}}
	if !report.GeneratedAt.IsZero() {
		summary = append(summary, []string{"Data from", report.GeneratedAt.Format(time.RFC3339)})
	}
	for _, f := range report.Facts {
		summary = append(summary, []string{f.Label, f.Value})
	}

	if err := writeSheet(file, summarySheet, summary); err != nil {
		return errors.WithStack(err)
	}

	if err := file.SetCellStyle(summarySheet, "A1", "A1", bold); err != nil {
		return errors.WithStack(err)
	}

	used := map[string]struct{}{summarySheet: {}}

	for _, t := range report.Tables {
		name := sheetName(t.Name, used)

		if _, err := file.NewSheet(name); err != nil {
			return errors.WithStack(err)
		}

		rows := append([][]string{t.Columns}, t.Rows...)
		if err := writeSheet(file, name, rows); err != nil {
			return errors.WithStack(err)
		}

		lastHeader, err := excelize.CoordinatesToCellName(max(len(t.Columns), 1), 1)
		if err != nil {
			return errors.WithStack(err)
		}

		if err := file.SetCellStyle(name, "A1", lastHeader, bold); err != nil {
			return errors.WithStack(err)
		}
	}

	if _, err := file.WriteTo(w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func writeSheet(file *excelize.File, sheet string, rows [][]string) error {
	for idx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			return errors.WithStack(err)
		}

		values := make([]any, len(row))
		for i, v := range row {
			values[i] = v
		}

		if err := file.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

// sheetName returns a unique sheet name within the 31 characters excel
// accepts.
func sheetName(name string, used map[string]struct{}) string {
	const maxLen = 31

	runes := []rune(excelizeSheetReplacer.Replace(name))
	if len(runes) > maxLen {
		runes = runes[:maxLen]
	}

	candidate := string(runes)
	for i := 2; ; i++ {
		if _, exists := used[candidate]; !exists {
			break
		}

		suffix := []rune(" " + strconv.Itoa(i))
		base := runes
		if len(base)+len(suffix) > maxLen {
			base = base[:maxLen-len(suffix)]
		}
		candidate = string(base) + string(suffix)
	}

	used[candidate] = struct{}{}

	return candidate
}
