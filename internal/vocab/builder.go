package vocab

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/assetkit/internal/config"
	ferrors "git.home.luguber.info/inful/assetkit/internal/foundation/errors"
	"git.home.luguber.info/inful/assetkit/internal/logfields"
	"git.home.luguber.info/inful/assetkit/internal/metrics"
	"git.home.luguber.info/inful/assetkit/internal/textio"
)

// IndexFileName returns the index file name for a bank.
func IndexFileName(bankID string) string {
	return bankID + "_index.json"
}

// BankSummary reports the outcome of indexing one bank.
type BankSummary struct {
	Bank           string
	Entries        int
	FilesProcessed int
	FilesMissing   int
	FilesMalformed int
	RecordsSkipped int
	OriginalBytes  int64
	IndexBytes     int64
	Output         string
}

// FilesSkipped is the number of configured files that contributed nothing.
func (s BankSummary) FilesSkipped() int {
	return s.FilesMissing + s.FilesMalformed
}

// Ratio is original size divided by index size.
func (s BankSummary) Ratio() float64 {
	if s.IndexBytes == 0 {
		return 0
	}
	return float64(s.OriginalBytes) / float64(s.IndexBytes)
}

// Saved is original size minus index size. It is negative when the index is larger.
func (s BankSummary) Saved() int64 {
	return s.OriginalBytes - s.IndexBytes
}

// Builder generates index files for the configured banks.
type Builder struct {
	cfg      config.VocabConfig
	logger   *slog.Logger
	recorder metrics.Recorder
	out      io.Writer
}

// NewBuilder creates a Builder for cfg. Progress lines are discarded until
// WithOutput is called.
func NewBuilder(cfg config.VocabConfig, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{cfg: cfg, logger: logger, recorder: metrics.NoopRecorder{}, out: io.Discard}
}

// WithRecorder sets the metrics recorder.
func (b *Builder) WithRecorder(r metrics.Recorder) *Builder {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	b.recorder = r
	return b
}

// WithOutput sets the writer for progress and summary lines.
func (b *Builder) WithOutput(w io.Writer) *Builder {
	if w == nil {
		w = io.Discard
	}
	b.out = w
	return b
}

// Run checks the source directory, builds every bank and fails when no bank
// produced a single entry. Summaries of written banks are returned even on error.
func (b *Builder) Run(ctx context.Context) ([]BankSummary, error) {
	if !textio.IsDir(b.cfg.SourceDir) {
		return nil, ferrors.ConfigError("vocabulary directory not found").
			WithContext("path", b.cfg.SourceDir).
			Build()
	}

	summaries, err := b.Generate(ctx)
	if err != nil {
		return summaries, err
	}

	total := 0
	for _, s := range summaries {
		total += s.Entries
	}
	if total == 0 {
		return summaries, ferrors.VocabError("no vocabulary entries were indexed").
			WithContext("path", b.cfg.SourceDir).
			Fatal().
			Build()
	}

	fmt.Fprintf(b.out, "\nAll index files generated in %s\n", b.cfg.IndexDir)
	return summaries, nil
}

// Generate builds each configured bank in order and writes its index file.
func (b *Builder) Generate(ctx context.Context) ([]BankSummary, error) {
	started := time.Now()
	defer func() { b.recorder.ObserveStageDuration("index", time.Since(started)) }()

	summaries := make([]BankSummary, 0, len(b.cfg.Banks))
	for _, bank := range b.cfg.Banks {
		if err := ctx.Err(); err != nil {
			return summaries, err
		}
		summary, err := b.BuildBank(ctx, bank)
		if err != nil {
			return summaries, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// BuildBank indexes one bank. Missing and malformed source files are skipped
// with a warning; a bank without entries still gets an empty index.
func (b *Builder) BuildBank(ctx context.Context, bank config.Bank) (BankSummary, error) {
	log := b.logger.With(logfields.Bank(bank.ID))
	summary := BankSummary{
		Bank:   bank.ID,
		Output: filepath.Join(b.cfg.IndexDir, IndexFileName(bank.ID)),
	}

	rule := strings.Repeat("=", 60)
	fmt.Fprintf(b.out, "\n%s\nProcessing %s word bank\n%s\n", rule, strings.ToUpper(bank.ID), rule)

	var entries []IndexEntry
	for _, name := range bank.Files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		path := filepath.Join(b.cfg.SourceDir, name)

		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				summary.FilesMissing++
				b.recorder.IncSkippedFile(bank.ID, metrics.SkipMissing)
				log.Warn("Vocabulary file not found, skipping", logfields.File(name), logfields.Path(path))
				fmt.Fprintf(b.out, "Warning: %s not found, skipping...\n", name)
				continue
			}
			summary.FilesMalformed++
			b.recorder.IncSkippedFile(bank.ID, metrics.SkipMalformed)
			log.Warn("Vocabulary file unreadable, skipping", logfields.File(name), logfields.Error(err))
			fmt.Fprintf(b.out, "Warning: %s could not be read, skipping...\n", name)
			continue
		}

		fmt.Fprintf(b.out, "Processing %s...\n", name)
		fileEntries, stats, err := ProcessFile(path, log)
		if err != nil {
			summary.FilesMalformed++
			b.recorder.IncSkippedFile(bank.ID, metrics.SkipMalformed)
			log.Warn("Malformed vocabulary file, skipping", logfields.File(name), logfields.Error(err))
			fmt.Fprintf(b.out, "Warning: %s could not be parsed, skipping...\n", name)
			continue
		}
		fmt.Fprintf(b.out, "  Found %d words\n", stats.Records)
		fmt.Fprintf(b.out, "  Extracted %d basic entries\n", len(fileEntries))

		summary.FilesProcessed++
		summary.RecordsSkipped += stats.Skipped
		summary.OriginalBytes += info.Size()
		entries = append(entries, fileEntries...)
	}

	data, err := EncodeIndex(entries)
	if err != nil {
		return summary, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to encode index").
			WithContext("bank", bank.ID).
			Build()
	}
	if err := textio.WriteFile(summary.Output, data); err != nil {
		return summary, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write index").
			WithContext("bank", bank.ID).
			WithContext("path", summary.Output).
			Build()
	}

	summary.Entries = len(entries)
	summary.IndexBytes = int64(len(data))

	b.recorder.SetBankEntries(bank.ID, summary.Entries)
	b.recorder.SetBankBytes(bank.ID, summary.OriginalBytes, summary.IndexBytes)
	b.recorder.AddSkippedRecords(bank.ID, summary.RecordsSkipped)
	log.Info("Index written",
		logfields.Path(summary.Output),
		logfields.Entries(summary.Entries),
		logfields.Bytes(summary.IndexBytes))

	WriteSummary(b.out, summary)
	return summary, nil
}
