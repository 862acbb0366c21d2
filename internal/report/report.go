package report

import (
	"time"
)

// Report is the format independent representation of a report: a list of
// labelled facts followed by tables.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Facts       []Fact
	Tables      []*Table

	// Data is the typed payload, used by structured renderers
	Data any
}

type Fact struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Table struct {
	Name    string     `json:"name"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func (t *Table) Append(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

func NewTable(name string, columns ...string) *Table {
	return &Table{
		Name:    name,
		Columns: columns,
		Rows:    make([][]string, 0),
	}
}
