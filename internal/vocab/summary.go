package vocab

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// WriteSummary prints the size statistics of one bank.
func WriteSummary(w io.Writer, s BankSummary) {
	fmt.Fprintf(w, "\n%s Summary:\n", strings.ToUpper(s.Bank))
	fmt.Fprintf(w, "  Total words: %s\n", humanize.Comma(int64(s.Entries)))
	if s.FilesSkipped() > 0 {
		fmt.Fprintf(w, "  Files skipped: %d\n", s.FilesSkipped())
	}
	if s.RecordsSkipped > 0 {
		fmt.Fprintf(w, "  Records skipped: %d\n", s.RecordsSkipped)
	}
	fmt.Fprintf(w, "  Original size: %s\n", humanize.IBytes(uint64(s.OriginalBytes)))
	fmt.Fprintf(w, "  Index size: %s\n", humanize.IBytes(uint64(s.IndexBytes)))
	fmt.Fprintf(w, "  Compression ratio: %.1fx\n", s.Ratio())
	fmt.Fprintf(w, "  Saved: %s\n", signedBytes(s.Saved()))
	fmt.Fprintf(w, "  Output: %s\n", s.Output)
}

func signedBytes(n int64) string {
	if n < 0 {
		return "-" + humanize.IBytes(uint64(-n))
	}
	return humanize.IBytes(uint64(n))
}
