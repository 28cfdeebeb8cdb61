package position

import (
	"strconv"
	"strings"
)

// Wildcard marks an unspecified staffing standard in the catalog.
const Wildcard = "*"

// naPlaceholder is the textual NaN that spreadsheet round-trips leave behind
// in otherwise empty cells.
const naPlaceholder = "nan"

// NormalizeCode canonicalizes a raw position-code cell for aggregation joins.
// Numeric-looking values with an accidental decimal suffix ("1020.0") are
// truncated to their integer part and reformatted without leading zeros.
// Empty cells and the textual NaN placeholder canonicalize to "", which
// signals an unmatched code.
func NormalizeCode(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || s == naPlaceholder {
		return ""
	}
	dot := strings.Index(s, ".")
	if dot < 0 {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s[:dot]
	}
	return strconv.FormatInt(int64(f), 10)
}

// CleanCode canonicalizes a raw position-code cell for the data-cleaning
// path. Unlike NormalizeCode it zero-pads the truncated integer part back to
// the width of the original integer part, so "0012.0" stays "0012". The two
// paths intentionally disagree; see DESIGN.md before changing either.
func CleanCode(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || s == naPlaceholder {
		return ""
	}
	dot := strings.Index(s, ".")
	if dot < 0 {
		return s
	}
	intPart := s[:dot]
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return intPart
	}
	return zeroPad(strconv.FormatInt(int64(f), 10), len(intPart))
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// IsNA reports whether a cell holds the textual NaN placeholder after
// trimming.
func IsNA(s string) bool {
	return strings.TrimSpace(s) == naPlaceholder
}
