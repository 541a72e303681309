package textio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{name: "plain utf-8", in: []byte(`[{"headWord":"abate"}]`), want: `[{"headWord":"abate"}]`},
		{name: "utf-8 bom stripped", in: append([]byte{0xEF, 0xBB, 0xBF}, []byte("[]")...), want: "[]"},
		{name: "utf-16le bom transcoded", in: []byte{0xFF, 0xFE, '[', 0x00, ']', 0x00}, want: "[]"},
		{name: "non-ascii untouched", in: []byte("减弱"), want: "减弱"},
		{name: "empty", in: []byte{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "english-vocabulary", "index", "cet6_index.json")

	require.NoError(t, WriteFile(target, []byte("[]")))
	require.NoError(t, WriteFile(target, []byte(`[{"id":"w1"}]`)))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"w1"}]`, string(data), "second write must fully overwrite")
}

func TestReadFileAndExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "src.js")
	require.NoError(t, os.WriteFile(path, append([]byte{0xEF, 0xBB, 0xBF}, "x"...), 0o600))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	assert.True(t, Exists(path))
	assert.False(t, IsDir(path))
	assert.True(t, IsDir(dir))
	assert.False(t, Exists(filepath.Join(dir, "missing.js")))

	_, err = ReadFile(filepath.Join(dir, "missing.js"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
