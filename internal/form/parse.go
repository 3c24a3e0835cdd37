package form

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPrefix matches the leading decimal literal of a form value, so that
// "12.5mm" reads as 12.5 the way a browser number field hands it over.
var numberPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseNumber reads a raw dimension value. Anything without a numeric prefix
// reads as zero, and so does a value too large for a float64; it never fails.
func ParseNumber(raw string) float64 {
	s := numberPrefix.FindString(strings.TrimSpace(raw))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}
