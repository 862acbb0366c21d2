package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile dumps the default registry in the node exporter textfile
// format. Nothing is written when path is empty.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return errors.Wrapf(err, "could not write metrics to '%s'", path)
	}

	return nil
}
