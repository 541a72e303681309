package commands

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	ferrors "git.home.luguber.info/inful/assetkit/internal/foundation/errors"
	"git.home.luguber.info/inful/assetkit/internal/logfields"
	"git.home.luguber.info/inful/assetkit/internal/metrics"
)

// metricsOutput backs the --metrics-file flag.
type metricsOutput struct {
	path string
	prom *metrics.PrometheusRecorder
}

func newMetricsOutput(path string) *metricsOutput {
	m := &metricsOutput{path: path}
	if path != "" {
		m.prom = metrics.NewPrometheusRecorder(prometheus.NewRegistry())
	}
	return m
}

// Recorder returns the recorder to hand to a pipeline.
func (m *metricsOutput) Recorder() metrics.Recorder {
	if m.prom == nil {
		return metrics.NoopRecorder{}
	}
	return m.prom
}

// Flush writes the textfile, also after a failed run. A write failure is
// returned only when the run itself succeeded.
func (m *metricsOutput) Flush(log *slog.Logger, runErr error) error {
	if m.prom == nil {
		return runErr
	}
	if err := m.prom.WriteTextfile(m.path); err != nil {
		log.Warn("Failed to write metrics file", logfields.Path(m.path), logfields.Error(err))
		if runErr == nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write metrics file").
				WithContext("path", m.path).
				Build()
		}
	}
	return runErr
}
