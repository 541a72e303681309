package metrics

import "time"

// ResultLabel enumerates section result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// SkipReason enumerates why a bank source file was not indexed.
type SkipReason string

const (
	SkipMissing   SkipReason = "missing"
	SkipMalformed SkipReason = "malformed"
)

// Recorder defines observability hooks for extraction and index builds.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	IncSectionResult(section string, result ResultLabel)
	SetBankEntries(bank string, n int)
	SetBankBytes(bank string, original, index int64)
	AddSkippedRecords(bank string, n int)
	IncSkippedFile(bank string, reason SkipReason)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) IncSectionResult(string, ResultLabel)       {}
func (NoopRecorder) SetBankEntries(string, int)                 {}
func (NoopRecorder) SetBankBytes(string, int64, int64)          {}
func (NoopRecorder) AddSkippedRecords(string, int)              {}
func (NoopRecorder) IncSkippedFile(string, SkipReason)          {}
