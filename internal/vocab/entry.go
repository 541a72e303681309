package vocab

import (
	"bytes"
	"encoding/json"
)

// IndexEntry is the reduced summary of a word record written to index files.
// Field order is the JSON key order.
type IndexEntry struct {
	ID       string `json:"id"`
	Word     string `json:"word"`
	Phonetic string `json:"phonetic"`
	Meaning  string `json:"meaning"`
	Rank     int    `json:"rank"`
}

// ExtractBasicInfo projects one raw word record into an IndexEntry. It fails for
// records that cannot be decoded; callers drop those records.
func ExtractBasicInfo(raw json.RawMessage) (IndexEntry, error) {
	rec, err := DecodeRecord(raw)
	if err != nil {
		return IndexEntry{}, err
	}
	return Project(rec), nil
}

// Project maps a decoded record to its IndexEntry.
func Project(rec WordRecord) IndexEntry {
	details := rec.Content.Word.Content
	return IndexEntry{
		ID:       rec.Content.Word.WordID,
		Word:     rec.HeadWord,
		Phonetic: Phonetic(details.USPhone, details.UKPhone),
		Meaning:  Meaning(details.Trans),
		Rank:     rec.WordRank,
	}
}

// Phonetic prefers the US transcription, then the UK one, each wrapped in slashes.
func Phonetic(us, uk string) string {
	switch {
	case us != "":
		return "/" + us + "/"
	case uk != "":
		return "/" + uk + "/"
	default:
		return ""
	}
}

// Meaning renders the first translation as "pos. meaning", or the bare meaning
// when no part of speech is given.
func Meaning(trans []*Translation) string {
	if len(trans) == 0 || trans[0] == nil {
		return ""
	}
	first := trans[0]
	if first.Pos != "" {
		return first.Pos + ". " + first.TranCn
	}
	return first.TranCn
}

// EncodeIndex serializes entries as a compact JSON array with non-ASCII and
// HTML-significant characters left unescaped.
func EncodeIndex(entries []IndexEntry) ([]byte, error) {
	if entries == nil {
		entries = []IndexEntry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
