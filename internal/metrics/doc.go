// Package metrics provides observability hooks for assetkit pipeline runs.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	builder := vocab.NewBuilder(cfg.Vocab, logger) // records to NoopRecorder
//	builder.WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// The CLI activates PrometheusRecorder when `index --metrics-file` is given and
// writes the gathered registry in the Prometheus text format, suitable for the
// node-exporter textfile collector.
package metrics
