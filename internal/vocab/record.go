// Package vocab builds compact word-bank index files from full vocabulary
// exports and reports on their contents.
//
// A word bank is an ordered list of source files, each a JSON array of richly
// structured word records. Each record is projected to a five-field IndexEntry;
// a bank's index is the concatenation of its files' entries in file-list order,
// then in-file order. Records that cannot be projected are logged and dropped,
// and missing or malformed source files are skipped with a warning.
//
// Record keys are matched exactly as written. An object member that is present
// but null (content, content.word, content.word.content or the first
// translation) makes the record malformed; absent members read as empty.
package vocab

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// WordRecord is the subset of an upstream word record read by assetkit.
// Unknown fields are ignored.
type WordRecord struct {
	HeadWord string
	WordRank int
	Content  RecordContent
}

// RecordContent wraps the nested word payload.
type RecordContent struct {
	Word WordPayload
}

// WordPayload carries the word identifier and its details.
type WordPayload struct {
	WordID  string
	Content WordDetails
}

// WordDetails holds phonetics, translations and example sentences. Sentence
// groups are kept raw and decoded on demand since the index never reads them.
type WordDetails struct {
	USPhone          string
	UKPhone          string
	Trans            []*Translation
	Sentence         json.RawMessage
	RealExamSentence json.RawMessage
}

// Translation is one localized meaning with its part of speech.
type Translation struct {
	Pos    string
	TranCn string
}

// SentenceGroup lists example sentences.
type SentenceGroup struct {
	Sentences []*Sentence
}

// Sentence is one example sentence.
type Sentence struct {
	SContent string
}

var (
	errNotObject  = errors.New("not a JSON object")
	errNullObject = errors.New("object is null")
)

// DecodeRecord parses one raw array element into a WordRecord.
func DecodeRecord(raw json.RawMessage) (WordRecord, error) {
	var rec WordRecord
	if err := rec.UnmarshalJSON(raw); err != nil {
		return WordRecord{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

func (r *WordRecord) UnmarshalJSON(data []byte) error {
	m, err := members(data)
	if err != nil {
		return err
	}
	return firstErr(
		member(m, "headWord", &r.HeadWord),
		member(m, "wordRank", &r.WordRank),
		object(m, "content", &r.Content),
	)
}

func (c *RecordContent) UnmarshalJSON(data []byte) error {
	m, err := members(data)
	if err != nil {
		return err
	}
	return object(m, "word", &c.Word)
}

func (w *WordPayload) UnmarshalJSON(data []byte) error {
	m, err := members(data)
	if err != nil {
		return err
	}
	return firstErr(
		member(m, "wordId", &w.WordID),
		object(m, "content", &w.Content),
	)
}

func (d *WordDetails) UnmarshalJSON(data []byte) error {
	m, err := members(data)
	if err != nil {
		return err
	}
	if err := firstErr(
		member(m, "usphone", &d.USPhone),
		member(m, "ukphone", &d.UKPhone),
	); err != nil {
		return err
	}
	d.Sentence = m["sentence"]
	d.RealExamSentence = m["realExamSentence"]
	return d.decodeTrans(m["trans"])
}

// decodeTrans requires the first translation to be an object; later elements
// that are null or malformed are kept as nil.
func (d *WordDetails) decodeTrans(raw json.RawMessage) error {
	var elems []json.RawMessage
	if err := json.Unmarshal(orNull(raw), &elems); err != nil {
		return fmt.Errorf("trans: %w", err)
	}
	d.Trans = make([]*Translation, len(elems))
	for i, elem := range elems {
		t := new(Translation)
		err := decodeObject(elem, t)
		if err == nil {
			d.Trans[i] = t
			continue
		}
		if i == 0 {
			return fmt.Errorf("trans[0]: %w", err)
		}
	}
	return nil
}

func (t *Translation) UnmarshalJSON(data []byte) error {
	m, err := members(data)
	if err != nil {
		return err
	}
	return firstErr(
		member(m, "pos", &t.Pos),
		member(m, "tranCn", &t.TranCn),
	)
}

func (g *SentenceGroup) UnmarshalJSON(data []byte) error {
	m, err := members(data)
	if err != nil {
		return err
	}
	return member(m, "sentences", &g.Sentences)
}

func (s *Sentence) UnmarshalJSON(data []byte) error {
	m, err := members(data)
	if err != nil {
		return err
	}
	return member(m, "sContent", &s.SContent)
}

// FirstSentence returns the first example sentence, preferring general examples
// over past-exam sentences. Unreadable groups are treated as absent.
func (d WordDetails) FirstSentence() (string, bool) {
	for _, raw := range []json.RawMessage{d.Sentence, d.RealExamSentence} {
		var group SentenceGroup
		if decodeObject(raw, &group) != nil {
			continue
		}
		if len(group.Sentences) > 0 && group.Sentences[0] != nil {
			return group.Sentences[0].SContent, true
		}
	}
	return "", false
}

// members decodes an object into its members, keyed exactly as written.
func members(data []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if isNull(trimmed) {
		return nil, errNullObject
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errNotObject
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// member decodes an optional scalar or array member. Absent and null members
// leave v untouched.
func member(m map[string]json.RawMessage, key string, v any) error {
	raw, ok := m[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// object decodes an optional object member. A null member is an error.
func object(m map[string]json.RawMessage, key string, v json.Unmarshaler) error {
	raw, ok := m[key]
	if !ok {
		return nil
	}
	if err := decodeObject(raw, v); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func decodeObject(raw json.RawMessage, v json.Unmarshaler) error {
	if len(raw) == 0 {
		return errNotObject
	}
	return v.UnmarshalJSON(raw)
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func orNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
