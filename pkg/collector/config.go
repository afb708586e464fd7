package collector

import "regexp"

// ChannelConfig maps a channel display name to its platform ID and the
// title patterns that identify full episodes on that channel. Patterns
// are evaluated any-match-wins, case-insensitively. New naming
// conventions are additions to this table, not logic changes.
type ChannelConfig struct {
	Name          string
	ChannelID     string
	TitlePatterns []*regexp.Regexp
}

// DefaultChannels is the production channel table.
func DefaultChannels() []ChannelConfig {
	return []ChannelConfig{
		{
			Name:      "Flow Podcast",
			ChannelID: "UC4ncvgh5hFr5O83MH7-jRJg",
			TitlePatterns: []*regexp.Regexp{
				// Covers "Flow #123" and "Flow Podcast #123"
				regexp.MustCompile(`(?i)Flow\s+(Podcast\s+)?#\s?\d{1,4}`),
				// Episode 486 shipped without the # marker
				regexp.MustCompile(`(?i)^RODRIGO CONSTANTINO$`),
			},
		},
		{
			Name:      "Podpah Podcast",
			ChannelID: "UCj9R9rOhl81fhnKxBpwJ-yw",
			TitlePatterns: []*regexp.Regexp{
				// Covers "Podpah - #495" and "Podpah #123"
				regexp.MustCompile(`(?i)Podpah\s*[-–]?\s*#\s?\d{1,4}`),
				// Covers "Podpah de Verão # 405"
				regexp.MustCompile(`(?i)Podpah\s+de\s+Verão\s+#\s?\d{1,4}`),
			},
		},
		{
			Name:      "Inteligência Ltda.",
			ChannelID: "UCWZoPPW7u2I4gZfhJBZ6NqQ",
			TitlePatterns: []*regexp.Regexp{
				// Covers titles with and without the trailing dot
				regexp.MustCompile(`(?i)Inteligência\s+Ltda\.?\s+(?:Podcast\s+)?#\s?\d{1,4}`),
			},
		},
	}
}
