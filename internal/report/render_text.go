package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bornholm/civicadmin/internal/markdown"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

func renderText(w io.Writer, report *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, report.Title)
	fmt.Fprintln(tw, strings.Repeat("=", len([]rune(report.Title))))

	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(tw, "Data from %s (%s)\n", report.GeneratedAt.Format(time.RFC3339), humanize.Time(report.GeneratedAt))
	}

	fmt.Fprintln(tw)

	for _, f := range report.Facts {
		fmt.Fprintf(tw, "%s:\t%s\n", f.Label, f.Value)
	}

	for _, t := range report.Tables {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, t.Name)
		fmt.Fprintln(tw, strings.Repeat("-", len([]rune(t.Name))))

		if len(t.Rows) == 0 {
			fmt.Fprintln(tw, "(none)")
			continue
		}

		fmt.Fprintln(tw, strings.ToUpper(strings.Join(t.Columns, "\t")))

		for _, row := range t.Rows {
			fmt.Fprintln(tw, strings.Join(sanitizeCells(row, "\t", " "), "\t"))
		}
	}

	if err := tw.Flush(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func renderMarkdown(w io.Writer, report *Report) error {
	var sb strings.Builder

	sb.WriteString("# ")
	sb.WriteString(report.Title)
	sb.WriteString("\n\n")

	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&sb, "_Data from %s_\n\n", report.GeneratedAt.Format(time.RFC3339))
	}

	for _, f := range report.Facts {
		fmt.Fprintf(&sb, "- **%s**: %s\n", f.Label, escapeMarkdown(f.Value))
	}

	for _, t := range report.Tables {
		sb.WriteString("\n## ")
		sb.WriteString(t.Name)
		sb.WriteString("\n\n")

		if len(t.Rows) == 0 {
			sb.WriteString("_None_\n")
			continue
		}

		sb.WriteString("| ")
		sb.WriteString(strings.Join(t.Columns, " | "))
		sb.WriteString(" |\n|")
		for range t.Columns {
			sb.WriteString(" --- |")
		}
		sb.WriteString("\n")

		for _, row := range t.Rows {
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = escapeMarkdown(c)
			}

			sb.WriteString("| ")
			sb.WriteString(strings.Join(cells, " | "))
			sb.WriteString(" |\n")
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func renderHTML(w io.Writer, report *Report) error {
	var source bytes.Buffer
	if err := renderMarkdown(&source, report); err != nil {
		return errors.WithStack(err)
	}

	page, err := markdown.RenderHTMLPage(report.Title, "en", source.Bytes())
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := w.Write(page); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

var markdownEscaper = strings.NewReplacer(
	"|", "\\|",
	"\n", " ",
	"\r", "",
	"*", "\\*",
	"_", "\\_",
	"<", "&lt;",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func sanitizeCells(cells []string, old string, new string) []string {
	sanitized := make([]string, len(cells))
	for i, c := range cells {
		sanitized[i] = strings.ReplaceAll(strings.ReplaceAll(c, old, new), "\n", " ")
	}
	return sanitized
}
