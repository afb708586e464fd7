package normalizer

import (
	"regexp"
	"strings"

	"podcast-metrics/pkg/domain"
)

// ExceptionTitle is the one known episode published without a #number
// marker. It gets an explicit lookup entry everywhere instead of being
// folded into the general patterns.
const ExceptionTitle = "RODRIGO CONSTANTINO"

// Inclusion patterns run against the trimmed, uppercased title,
// any-match-wins: each known channel word plus an optional separator and
// a #number marker.
var inclusionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`PODPAH\s*(-\s*)?#\s*\d+`),
	regexp.MustCompile(`FLOW\s*(-\s*)?#\s*\d+`),
	regexp.MustCompile(`PODCAST\s*(-\s*)?#\s*\d+`),
	regexp.MustCompile(`LTDA\.?\s*(-\s*)?#\s*\d+`),
	regexp.MustCompile(`VERÃO\s*(-\s*)?#\s*\d+`),
}

// Exclusion patterns drop known off-topic clip formats even when a title
// also matched inclusion.
var exclusionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`EXTRA\s*FLOW`),
}

// KeepTitle reports whether a raw title identifies a full episode:
// it must match an inclusion pattern (or the exception title) and must
// not match any exclusion pattern. Exclusion overrides inclusion.
func KeepTitle(title string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(title))

	for _, pattern := range exclusionPatterns {
		if pattern.MatchString(normalized) {
			return false
		}
	}

	if strings.Contains(normalized, ExceptionTitle) {
		return true
	}
	for _, pattern := range inclusionPatterns {
		if pattern.MatchString(normalized) {
			return true
		}
	}
	return false
}

// FilterEpisodes keeps only rows whose title passes KeepTitle.
func FilterEpisodes(rows []domain.RawEpisode) []domain.RawEpisode {
	kept := make([]domain.RawEpisode, 0, len(rows))
	for _, row := range rows {
		if KeepTitle(row.VideoTitle) {
			kept = append(kept, row)
		}
	}
	return kept
}
