package normalizer

import (
	"regexp"
	"strings"
)

// relabelRule reassigns a channel label when any of its patterns match
// the trimmed, uppercased title.
type relabelRule struct {
	patterns []*regexp.Regexp
	label    string
}

// Rules are evaluated top-to-bottom, first-match-wins: "Flow Podcast
// #n" titles (the original format, plus the exception episode) belong to
// the 1.0 era, bare "Flow #n" titles to the 2.0 era. Order matters
// because the 2.0 pattern also matches 1.0 titles.
var relabelRules = []relabelRule{
	{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`FLOW\s+PODCAST\s*#\s*\d+`),
			regexp.MustCompile(ExceptionTitle),
		},
		label: "Flow 1.0",
	},
	{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`FLOW\s*#\s*\d+`),
		},
		label: "Flow 2.0",
	},
}

// RelabelChannel returns the sub-brand label for the title, or the
// current channel label when no rule matches.
func RelabelChannel(title, channel string) string {
	normalized := strings.ToUpper(strings.TrimSpace(title))

	for _, rule := range relabelRules {
		for _, pattern := range rule.patterns {
			if pattern.MatchString(normalized) {
				return rule.label
			}
		}
	}
	return channel
}
