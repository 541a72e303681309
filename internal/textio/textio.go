// Package textio reads and writes the whole-file text assets handled by assetkit.
//
// Source files are read fully into memory. A leading byte order mark is honored and
// stripped (UTF-16 exports are transcoded to UTF-8); files without a BOM pass through
// unchanged. Writes create missing parent directories and overwrite the destination.
package textio

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadFile returns the contents of path as UTF-8 with any byte order mark removed.
func ReadFile(path string) ([]byte, error) {
	// #nosec G304 - paths come from the assetkit configuration
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

// Decode strips a byte order mark from data, transcoding UTF-16 to UTF-8 when the BOM says so.
func Decode(data []byte) ([]byte, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("decode text: %w", err)
	}
	return out, nil
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- site assets are world-readable
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path names an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
