package vocab

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"git.home.luguber.info/inful/assetkit/internal/config"
	"git.home.luguber.info/inful/assetkit/internal/logfields"
	"git.home.luguber.info/inful/assetkit/internal/textio"
	"git.home.luguber.info/inful/assetkit/internal/util/sets"
)

// NoExample is reported for occurrences without any example sentence.
const NoExample = "无例句"

// DefaultDuplicateLimit caps the duplicate report when no limit is given.
const DefaultDuplicateLimit = 3

// Occurrence is one appearance of a headword in a bank.
type Occurrence struct {
	File         string
	Translations string
	Sentence     string
}

// Duplicate is a headword that appears more than once across a bank's files.
type Duplicate struct {
	Word        string
	Occurrences []Occurrence
}

// Identical reports whether every occurrence carries the same translations and
// example sentence.
func (d Duplicate) Identical() bool {
	for _, o := range d.Occurrences[1:] {
		if o.Translations != d.Occurrences[0].Translations || o.Sentence != d.Occurrences[0].Sentence {
			return false
		}
	}
	return true
}

// FindDuplicates groups a bank's records by headword and returns the words seen
// more than once, in first-seen order. A positive limit caps the result.
func FindDuplicates(ctx context.Context, dir string, bank config.Bank, limit int, logger *slog.Logger) ([]Duplicate, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(logfields.Bank(bank.ID))

	var order []string
	words := sets.New[string]()
	seen := make(map[string][]Occurrence)
	for _, name := range bank.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(dir, name)
		if !textio.Exists(path) {
			log.Warn("Vocabulary file not found, skipping", logfields.File(name), logfields.Path(path))
			continue
		}
		data, err := textio.ReadFile(path)
		if err != nil {
			log.Warn("Vocabulary file unreadable, skipping", logfields.File(name), logfields.Error(err))
			continue
		}
		records, err := ParseWordList(data)
		if err != nil {
			log.Warn("Malformed vocabulary file, skipping", logfields.File(name), logfields.Error(err))
			continue
		}

		for i, raw := range records {
			rec, err := DecodeRecord(raw)
			if err != nil {
				log.Debug("Skipping malformed word record", logfields.File(name), logfields.Record(i), logfields.Error(err))
				continue
			}
			if rec.HeadWord == "" {
				continue
			}
			if words.Insert(rec.HeadWord) {
				order = append(order, rec.HeadWord)
			}
			seen[rec.HeadWord] = append(seen[rec.HeadWord], occurrenceOf(name, rec))
		}
	}

	var dups []Duplicate
	for _, word := range order {
		occ := seen[word]
		if len(occ) < 2 {
			continue
		}
		dups = append(dups, Duplicate{Word: word, Occurrences: occ})
		if limit > 0 && len(dups) >= limit {
			break
		}
	}
	return dups, nil
}

func occurrenceOf(file string, rec WordRecord) Occurrence {
	details := rec.Content.Word.Content
	trans := make([]string, 0, len(details.Trans))
	for _, t := range details.Trans {
		if t != nil {
			trans = append(trans, t.TranCn)
		}
	}
	sentence, ok := details.FirstSentence()
	if !ok {
		sentence = NoExample
	}
	return Occurrence{File: file, Translations: strings.Join(trans, "; "), Sentence: sentence}
}

// Truncate shortens s to n runes, appending "..." when it was cut.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "..."
}

// WriteDuplicates prints a human-readable duplicate report.
func WriteDuplicates(w io.Writer, bankID string, dups []Duplicate) {
	if len(dups) == 0 {
		fmt.Fprintf(w, "No duplicate headwords found in %s\n", bankID)
		return
	}
	fmt.Fprintf(w, "Duplicate headwords in %s:\n", bankID)
	for _, d := range dups {
		fmt.Fprintf(w, "\n[%s] appears %d times:\n", d.Word, len(d.Occurrences))
		for i, o := range d.Occurrences {
			fmt.Fprintf(w, "  [%d] source: %s\n", i+1, o.File)
			fmt.Fprintf(w, "      meaning: %s\n", o.Translations)
			fmt.Fprintf(w, "      example: %s\n", Truncate(o.Sentence, 60))
		}
		if d.Identical() {
			fmt.Fprintln(w, "  >>> identical (redundant data)")
		} else {
			fmt.Fprintln(w, "  >>> content differs")
		}
	}
}
