package common

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

var OutputFormats = []OutputFormat{OutputText, OutputJSON, OutputYAML}

var ErrUnknownOutput = errors.New("unknown output format")

func GetOutputFormat(ctx *cli.Context) (OutputFormat, error) {
	raw := ctx.String(ParamOutput)
	if raw == "" {
		return OutputText, nil
	}

	format := OutputFormat(strings.ToLower(raw))
	if format == "yml" {
		format = OutputYAML
	}

	if !slices.Contains(OutputFormats, format) {
		return "", errors.Wrapf(ErrUnknownOutput, "'%s', expected text, json or yaml", raw)
	}

	return format, nil
}

// Print writes value to the standard output in the requested format. The
// text function renders the human readable form.
func Print(ctx *cli.Context, value any, text func(w io.Writer) error) error {
	return Fprint(ctx, os.Stdout, value, text)
}

func Fprint(ctx *cli.Context, w io.Writer, value any, text func(w io.Writer) error) error {
	format, err := GetOutputFormat(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	switch format {
	case OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(value); err != nil {
			return errors.WithStack(err)
		}

	case OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return errors.WithStack(err)
		}
		if err := encoder.Close(); err != nil {
			return errors.WithStack(err)
		}

	default:
		if err := text(w); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

// Table writes aligned columns.
type Table struct {
	writer *tabwriter.Writer
}

func (t *Table) Row(cells ...any) {
	for idx, c := range cells {
		if idx > 0 {
			fmt.Fprint(t.writer, "\t")
		}
		fmt.Fprint(t.writer, strings.ReplaceAll(fmt.Sprint(c), "\t", " "))
	}
	fmt.Fprintln(t.writer)
}

func (t *Table) Flush() error {
	if err := t.writer.Flush(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func NewTable(w io.Writer, header ...string) *Table {
	table := &Table{
		writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0),
	}

	if len(header) > 0 {
		cells := make([]any, len(header))
		for i, h := range header {
			cells[i] = strings.ToUpper(h)
		}
		table.Row(cells...)
	}

	return table
}

// Fields writes "label: value" lines, skipping empty values.
func Fields(w io.Writer, pairs ...string) error {
	table := &Table{writer: tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)}

	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		table.Row(pairs[i]+":", pairs[i+1])
	}

	return table.Flush()
}

func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n-1]) + "…"
}
