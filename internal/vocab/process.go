package vocab

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/assetkit/internal/logfields"
	"git.home.luguber.info/inful/assetkit/internal/textio"
)

// FileStats counts the records seen in one source file.
type FileStats struct {
	Records int
	Skipped int
}

var errNotArray = errors.New("word list is not a JSON array")

// ParseWordList splits a source file into its raw records. Anything but a JSON
// array, including a bare null, is rejected.
func ParseWordList(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("parse word list: %w", errNotArray)
	}
	var records []json.RawMessage
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("parse word list: %w", err)
	}
	return records, nil
}

// ProcessFile reads a JSON array of word records from path and returns the
// projected entries in array order. Records that fail to project are logged and
// dropped. A missing, unreadable or non-array file is an error.
func ProcessFile(path string, logger *slog.Logger) ([]IndexEntry, FileStats, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := textio.ReadFile(path)
	if err != nil {
		return nil, FileStats{}, err
	}
	records, err := ParseWordList(data)
	if err != nil {
		return nil, FileStats{}, err
	}

	stats := FileStats{Records: len(records)}
	entries := make([]IndexEntry, 0, len(records))
	for i, raw := range records {
		entry, err := ExtractBasicInfo(raw)
		if err != nil {
			stats.Skipped++
			logger.Warn("Skipping malformed word record", logfields.Path(path), logfields.Record(i), logfields.Error(err))
			continue
		}
		entries = append(entries, entry)
	}
	return entries, stats, nil
}
