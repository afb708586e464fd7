package youtube

import (
	"fmt"
	"regexp"
	"strconv"
)

// The API reports durations as ISO-8601, e.g. "PT1H23M45S". Live streams
// occasionally exceed a day ("P1DT2H"); weeks never occur in practice but
// cost nothing to accept.
var isoDurationRE = regexp.MustCompile(`^P(?:(\d+)W)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// ParseDurationSeconds converts an ISO-8601 duration string to whole
// seconds. Callers treat an error as "duration unknown", not as fatal.
func ParseDurationSeconds(iso string) (int64, error) {
	m := isoDurationRE.FindStringSubmatch(iso)
	if m == nil {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", iso)
	}

	matched := false
	var total int64
	multipliers := []int64{7 * 24 * 3600, 24 * 3600, 3600, 60, 1}
	for i, mult := range multipliers {
		group := m[i+1]
		if group == "" {
			continue
		}
		n, err := strconv.ParseInt(group, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid ISO-8601 duration %q: %w", iso, err)
		}
		total += n * mult
		matched = true
	}

	if !matched {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", iso)
	}
	return total, nil
}
