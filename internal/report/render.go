package report

import (
	"io"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatXLSX     Format = "xlsx"
)

var Formats = []Format{
	FormatText,
	FormatMarkdown,
	FormatHTML,
	FormatJSON,
	FormatCSV,
	FormatXLSX,
}

var ErrUnknownFormat = errors.New("unknown format")

type Renderer interface {
	Render(w io.Writer, report *Report) error
}

type RendererFunc func(w io.Writer, report *Report) error

func (f RendererFunc) Render(w io.Writer, report *Report) error {
	return f(w, report)
}

var renderers = map[Format]Renderer{
	FormatText:     RendererFunc(renderText),
	FormatMarkdown: RendererFunc(renderMarkdown),
	FormatHTML:     RendererFunc(renderHTML),
	FormatJSON:     RendererFunc(renderJSON),
	FormatCSV:      RendererFunc(renderCSV),
	FormatXLSX:     RendererFunc(renderXLSX),
}

func ParseFormat(raw string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(raw)))
	if format == "md" {
		format = FormatMarkdown
	}

	if !slices.Contains(Formats, format) {
		names := make([]string, len(Formats))
		for i, f := range Formats {
			names[i] = string(f)
		}
		return "", errors.Wrapf(ErrUnknownFormat, "'%s', expected one of %s", raw, strings.Join(names, ", "))
	}

	return format, nil
}

// Extension returns the file extension used when publishing a report.
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return ".txt"
	case FormatMarkdown:
		return ".md"
	default:
		return "." + string(f)
	}
}

// Binary reports whether the format should not be written to a terminal.
func (f Format) Binary() bool {
	return f == FormatXLSX
}

func Render(w io.Writer, report *Report, format Format) error {
	renderer, exists := renderers[format]
	if !exists {
		return errors.Wrapf(ErrUnknownFormat, "'%s'", format)
	}

	if err := renderer.Render(w, report); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
