package alert

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/bornholm/civicadmin/internal/metrics"
	"github.com/bornholm/go-x/slogx"
)

const (
	successMark = "✓"
	failureMark = "✗"
)

// Console prints alerts on the terminal. Successes and failures go to
// their own writers, failures with the operator-facing message only.
type Console struct {
	success io.Writer
	failure io.Writer
	mutex  sync.Mutex
}

// Success implements port.Alerter.
func (c *Console) Success(ctx context.Context, title string, message string) {
	metrics.AlertsTotal.With(map[string]string{
		metrics.LabelKind: metrics.AlertKindSuccess,
	}).Inc()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if message == "" {
		fmt.Fprintf(c.success, "%s %s\n", successMark, title)
		return
	}

	fmt.Fprintf(c.success, "%s %s: %s\n", successMark, title, message)
}

// Failure implements port.Alerter.
func (c *Console) Failure(ctx context.Context, title string, err error) {
	metrics.AlertsTotal.With(map[string]string{
		metrics.LabelKind: metrics.AlertKindFailure,
	}).Inc()

	slog.ErrorContext(ctx, "action failed", slog.String("action", title), slogx.Error(err))

	c.mutex.Lock()
	defer c.mutex.Unlock()

	fmt.Fprintf(c.failure, "%s %s: %s\n", failureMark, title, service.UserMessage(err))
}

func NewConsole(success io.Writer, failure io.Writer) *Console {
	return &Console{
		success: success,
		failure: failure,
	}
}

var _ port.Alerter = &Console{}
