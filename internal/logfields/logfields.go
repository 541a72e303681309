package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyCommand    = "command"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyBank       = "bank"
	KeyFile       = "file"
	KeyPath       = "path"
	KeySection    = "section"
	KeyMarker     = "marker"
	KeyEntries    = "entries"
	KeyRecord     = "record"
	KeyBytes      = "bytes"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Command(name string) slog.Attr   { return slog.String(KeyCommand, name) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Bank(id string) slog.Attr        { return slog.String(KeyBank, id) }
func File(name string) slog.Attr      { return slog.String(KeyFile, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Marker(m string) slog.Attr       { return slog.String(KeyMarker, m) }
func Entries(n int) slog.Attr         { return slog.Int(KeyEntries, n) }
func Record(i int) slog.Attr          { return slog.Int(KeyRecord, i) }
func Bytes(n int64) slog.Attr         { return slog.Int64(KeyBytes, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
