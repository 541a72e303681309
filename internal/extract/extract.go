// Package extract carves marker-delimited sections out of combined script and
// stylesheet assets and writes them as standalone files wrapped in fixed templates.
//
// A section starts at the first occurrence of its start marker. When an anchor
// marker is configured it must appear after the start marker and before the end.
// The section ends at the last occurrence of the end marker (exclusive), or at the
// end of the document when no end marker is configured. Every missing marker is
// reported as an error; nothing is written for a section that cannot be located.
package extract

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"git.home.luguber.info/inful/assetkit/internal/config"
	ferrors "git.home.luguber.info/inful/assetkit/internal/foundation/errors"
	"git.home.luguber.info/inful/assetkit/internal/logfields"
	"git.home.luguber.info/inful/assetkit/internal/metrics"
	"git.home.luguber.info/inful/assetkit/internal/textio"
)

// Result describes one written section.
type Result struct {
	Section string
	Output  string
	Body    string
	Bytes   int
}

// Locate returns the byte range of section s within doc.
func Locate(doc string, s config.Section) (start, end int, err error) {
	start = strings.Index(doc, s.StartMarker)
	if start < 0 {
		return 0, 0, markerError("start marker not found", s, s.StartMarker)
	}

	end = len(doc)
	if s.EndMarker != "" {
		end = strings.LastIndex(doc, s.EndMarker)
		if end < 0 {
			return 0, 0, markerError("end marker not found", s, s.EndMarker)
		}
		if end < start+len(s.StartMarker) {
			return 0, 0, markerError("end marker precedes start marker", s, s.EndMarker)
		}
	}

	if s.AnchorMarker != "" {
		anchor := strings.Index(doc[start:], s.AnchorMarker)
		if anchor < 0 {
			return 0, 0, markerError("anchor marker not found after start marker", s, s.AnchorMarker)
		}
		if start+anchor+len(s.AnchorMarker) > end {
			return 0, 0, markerError("anchor marker falls outside the section", s, s.AnchorMarker)
		}
	}

	return start, end, nil
}

// Slice returns the trimmed text of section s.
func Slice(doc string, s config.Section) (string, error) {
	start, end, err := Locate(doc, s)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc[start:end]), nil
}

// Render wraps body in the template's preamble and epilogue.
func Render(body string, tpl Template) []byte {
	var b strings.Builder
	b.Grow(len(tpl.Preamble) + len(body) + len(tpl.Epilogue))
	b.WriteString(tpl.Preamble)
	b.WriteString(body)
	b.WriteString(tpl.Epilogue)
	return []byte(b.String())
}

func markerError(msg string, s config.Section, marker string) error {
	return ferrors.ExtractError(msg).
		WithContext("section", s.Name).
		WithContext("marker", marker).
		WithContext("path", s.Source).
		Build()
}

// Extractor writes configured sections to their output files.
type Extractor struct {
	logger   *slog.Logger
	recorder metrics.Recorder
}

// NewExtractor creates an Extractor logging to logger (slog.Default when nil).
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger, recorder: metrics.NoopRecorder{}}
}

// WithRecorder sets the metrics recorder.
func (e *Extractor) WithRecorder(r metrics.Recorder) *Extractor {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	e.recorder = r
	return e
}

// Run extracts every section in order. It stops at the first failure; sections
// written before it are left in place.
func (e *Extractor) Run(ctx context.Context, sections []config.Section) ([]Result, error) {
	started := time.Now()
	defer func() { e.recorder.ObserveStageDuration("extract", time.Since(started)) }()

	results := make([]Result, 0, len(sections))
	for _, s := range sections {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := e.ExtractSection(s)
		if err != nil {
			e.recorder.IncSectionResult(s.Name, metrics.ResultFailed)
			return results, err
		}
		e.recorder.IncSectionResult(s.Name, metrics.ResultSuccess)
		results = append(results, res)
	}
	return results, nil
}

// ExtractSection reads the section's source, slices and renders it, and
// overwrites the output file.
func (e *Extractor) ExtractSection(s config.Section) (Result, error) {
	log := e.logger.With(logfields.Section(s.Name))

	tpl, err := LookupTemplate(s.Template)
	if err != nil {
		return Result{}, err
	}

	src, err := textio.ReadFile(s.Source)
	if err != nil {
		return Result{}, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read section source").
			WithContext("section", s.Name).
			WithContext("path", s.Source).
			Build()
	}

	body, err := Slice(string(src), s)
	if err != nil {
		return Result{}, err
	}
	log.Debug("Section located", logfields.Path(s.Source), logfields.Bytes(int64(len(body))))

	out := Render(body, tpl)
	if err := textio.WriteFile(s.Output, out); err != nil {
		return Result{}, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write section output").
			WithContext("section", s.Name).
			WithContext("path", s.Output).
			Build()
	}
	log.Info("Section written", logfields.Path(s.Output), logfields.Bytes(int64(len(out))))

	return Result{Section: s.Name, Output: s.Output, Body: body, Bytes: len(out)}, nil
}
