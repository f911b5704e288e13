package correlate

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter sniffs the most plausible field delimiter of a
// CSV-like stream. Releases of the same table circulate both comma- and
// tab-delimited, so the separator is never hardcoded.
func DetermineDelimiter(r io.Reader) rune {
	candidates := detector.New().DetectDelimiter(r, '"')

	if len(candidates) > 0 {
		return rune(candidates[0][0])
	}

	// Nothing detectable, e.g. a single-column table. Assume comma.
	return ','
}
