package vocab

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/assetkit/internal/config"
)

const (
	dupFile1 = `[
  {"headWord":"alpha","content":{"word":{"content":{"trans":[{"tranCn":"甲"},{"tranCn":"首"}],"sentence":{"sentences":[{"sContent":"Alpha first."}]}}}}},
  {"headWord":"beta","content":{"word":{"content":{"trans":[{"tranCn":"乙"}]}}}},
  {"headWord":"gamma","content":{"word":{"content":{"trans":[{"tranCn":"丙"}]}}}}
]`
	dupFile2 = `[
  {"headWord":"beta","content":{"word":{"content":{"trans":[{"tranCn":"乙"}]}}}},
  {"headWord":"alpha","content":{"word":{"content":{"trans":[{"tranCn":"甲"}],"realExamSentence":{"sentences":[{"sContent":"Exam alpha."}]}}}}},
  {"headWord":""},
  null
]`
)

func TestFindDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "one.json", dupFile1)
	writeFixture(t, dir, "two.json", dupFile2)
	bank := config.Bank{ID: "cet6", Files: []string{"one.json", "missing.json", "two.json"}}

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	dups, err := FindDuplicates(context.Background(), dir, bank, 0, logger)
	require.NoError(t, err)
	require.Len(t, dups, 2)

	alpha := dups[0]
	assert.Equal(t, "alpha", alpha.Word)
	assert.Equal(t, []Occurrence{
		{File: "one.json", Translations: "甲; 首", Sentence: "Alpha first."},
		{File: "two.json", Translations: "甲", Sentence: "Exam alpha."},
	}, alpha.Occurrences)
	assert.False(t, alpha.Identical())

	beta := dups[1]
	assert.Equal(t, "beta", beta.Word)
	assert.Equal(t, NoExample, beta.Occurrences[0].Sentence)
	assert.True(t, beta.Identical())

	assert.Contains(t, logs.String(), "file=missing.json")
}

func TestFindDuplicatesLimit(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "one.json", dupFile1)
	writeFixture(t, dir, "two.json", dupFile2)
	bank := config.Bank{ID: "cet6", Files: []string{"one.json", "two.json"}}

	dups, err := FindDuplicates(context.Background(), dir, bank, 1, nil)
	require.NoError(t, err)
	require.Len(t, dups, 1)
	assert.Equal(t, "alpha", dups[0].Word)
}

func TestFindDuplicatesNone(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "one.json", dupFile1)

	dups, err := FindDuplicates(context.Background(), dir, config.Bank{ID: "k", Files: []string{"one.json"}}, 3, nil)
	require.NoError(t, err)
	assert.Empty(t, dups)

	var out bytes.Buffer
	WriteDuplicates(&out, "k", dups)
	assert.Equal(t, "No duplicate headwords found in k\n", out.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 60))
	assert.Equal(t, "减弱减...", Truncate("减弱减弱", 3))

	long := strings.Repeat("a", 61)
	assert.Equal(t, strings.Repeat("a", 60)+"...", Truncate(long, 60))
}

func TestWriteDuplicates(t *testing.T) {
	dups := []Duplicate{{
		Word: "beta",
		Occurrences: []Occurrence{
			{File: "one.json", Translations: "乙", Sentence: NoExample},
			{File: "two.json", Translations: "乙", Sentence: NoExample},
		},
	}}

	var out bytes.Buffer
	WriteDuplicates(&out, "cet6", dups)
	assert.Contains(t, out.String(), "[beta] appears 2 times:")
	assert.Contains(t, out.String(), "  [2] source: two.json")
	assert.Contains(t, out.String(), "      meaning: 乙")
	assert.Contains(t, out.String(), ">>> identical (redundant data)")
}
