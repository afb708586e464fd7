package normalizer

import (
	"strconv"
	"strings"
)

// CleanCount parses an engagement counter that may carry apostrophes or
// thousands-separator periods ("1.234.567"). Anything unparseable
// becomes 0; the raw string column is preserved upstream, so "unknown"
// stays recoverable.
func CleanCount(raw string) int64 {
	cleaned := strings.NewReplacer("'", "", ".", "").Replace(raw)
	cleaned = strings.TrimSpace(cleaned)

	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// SafeRatio divides a counter by the view count, returning exactly 0
// when there are no views.
func SafeRatio(counter, views int64) float64 {
	if views <= 0 {
		return 0
	}
	return float64(counter) / float64(views)
}
