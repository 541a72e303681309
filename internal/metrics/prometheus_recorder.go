package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "assetkit"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry       *prom.Registry
	stageDuration  *prom.HistogramVec
	sectionResults *prom.CounterVec
	bankEntries    *prom.GaugeVec
	bankBytes      *prom.GaugeVec
	skippedRecords *prom.CounterVec
	skippedFiles   *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "stage_duration_seconds",
		Help:      "Duration of pipeline stages",
		Buckets:   prom.DefBuckets,
	}, []string{"stage"})
	pr.sectionResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "section_results_total",
		Help:      "Section extraction results by outcome",
	}, []string{"section", "result"})
	pr.bankEntries = prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "bank_index_entries",
		Help:      "Entries written to the last index of each bank",
	}, []string{"bank"})
	pr.bankBytes = prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "bank_bytes",
		Help:      "Source and index sizes of each bank in bytes",
	}, []string{"bank", "kind"})
	pr.skippedRecords = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "records_skipped_total",
		Help:      "Word records dropped because they could not be projected",
	}, []string{"bank"})
	pr.skippedFiles = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "files_skipped_total",
		Help:      "Bank source files skipped by reason",
	}, []string{"bank", "reason"})
	reg.MustRegister(pr.stageDuration, pr.sectionResults, pr.bankEntries, pr.bankBytes, pr.skippedRecords, pr.skippedFiles)
	return pr
}

// WriteTextfile writes all gathered metrics to path in the Prometheus text format.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncSectionResult(section string, result ResultLabel) {
	if p == nil || p.sectionResults == nil {
		return
	}
	p.sectionResults.WithLabelValues(section, string(result)).Inc()
}

func (p *PrometheusRecorder) SetBankEntries(bank string, n int) {
	if p == nil || p.bankEntries == nil {
		return
	}
	p.bankEntries.WithLabelValues(bank).Set(float64(n))
}

func (p *PrometheusRecorder) SetBankBytes(bank string, original, index int64) {
	if p == nil || p.bankBytes == nil {
		return
	}
	p.bankBytes.WithLabelValues(bank, "original").Set(float64(original))
	p.bankBytes.WithLabelValues(bank, "index").Set(float64(index))
}

func (p *PrometheusRecorder) AddSkippedRecords(bank string, n int) {
	if p == nil || p.skippedRecords == nil || n <= 0 {
		return
	}
	p.skippedRecords.WithLabelValues(bank).Add(float64(n))
}

func (p *PrometheusRecorder) IncSkippedFile(bank string, reason SkipReason) {
	if p == nil || p.skippedFiles == nil {
		return
	}
	p.skippedFiles.WithLabelValues(bank, string(reason)).Inc()
}
