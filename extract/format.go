package extract

import (
	"strconv"
	"strings"
)

// FormatFloat renders a floating statistic with two decimal places, then
// strips trailing zeros and a trailing decimal point. Applied uniformly
// wherever a float statistic is surfaced, so repeated extraction is
// textually stable.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// FormatInt renders an integer statistic as a plain integer.
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// roundStat applies the two-decimal formatting rule to the numeric value
// itself, for statistics surfaced as numbers rather than text.
func roundStat(v float64) float64 {
	parsed, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return parsed
}
