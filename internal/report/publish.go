package report

import (
	"bytes"
	"context"
	"log/slog"
	"path"
	"strings"

	"github.com/bornholm/civicadmin/internal/filesystem"
	"github.com/bornholm/civicadmin/internal/metrics"
	"github.com/pkg/errors"
)

// Publish renders the report and writes it to the backend under name. The
// format extension is appended when name has none.
func Publish(ctx context.Context, backend filesystem.Backend, scheme string, name string, report *Report, format Format) (string, error) {
	if path.Ext(name) == "" {
		name = name + format.Extension()
	}

	var buf bytes.Buffer
	if err := Render(&buf, report, format); err != nil {
		return "", errors.WithStack(err)
	}

	size := buf.Len()

	if err := backend.Put(ctx, name, &buf); err != nil {
		return "", errors.Wrapf(err, "could not publish report '%s'", name)
	}

	metrics.ReportsPublishedTotal.WithLabelValues(string(format), strings.ToLower(scheme)).Inc()

	slog.DebugContext(ctx, "report published", slog.String("name", name), slog.String("format", string(format)), slog.Int("size", size))

	return name, nil
}

// FileName returns a file name derived from the report title and the
// generation date, ie "politician-scorecard-jane-doe-2024-05-01".
func FileName(report *Report) string {
	var sb strings.Builder
	dash := false

	for _, r := range strings.ToLower(report.Title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			dash = false
		default:
			if !dash && sb.Len() > 0 {
				sb.WriteByte('-')
				dash = true
			}
		}
	}

	name := strings.TrimSuffix(sb.String(), "-")
	if name == "" {
		name = "report"
	}

	if !report.GeneratedAt.IsZero() {
		name += "-" + report.GeneratedAt.Format("2006-01-02")
	}

	return name
}
