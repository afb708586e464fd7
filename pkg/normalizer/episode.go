package normalizer

import (
	"regexp"
	"sort"
	"strings"

	"podcast-metrics/pkg/domain"
)

// exceptionEpisodeNumber is the known number of the one episode whose
// title carries no # marker (see ExceptionTitle).
const exceptionEpisodeNumber = 486

var episodeNumberRE = regexp.MustCompile(`#\s*(\d+)`)

// EpisodeNumber extracts the episode number from a title: the first
// #digits run, or the hardcoded exception when the trimmed, uppercased
// title equals the exception title exactly. Returns nil when neither
// applies.
func EpisodeNumber(title string) *int {
	normalized := strings.ToUpper(strings.TrimSpace(title))

	if normalized == ExceptionTitle {
		n := exceptionEpisodeNumber
		return &n
	}

	m := episodeNumberRE.FindStringSubmatch(normalized)
	if m == nil {
		return nil
	}

	n := 0
	for _, r := range m[1] {
		n = n*10 + int(r-'0')
	}
	return &n
}

// MissingEpisodes reports, per channel, every integer strictly inside
// the channel's observed [min, max] episode range that has no record.
// Channels without a single resolvable episode number contribute
// nothing. Output is sorted by channel then number, so two runs over the
// same input produce identical reports.
func MissingEpisodes(episodes []domain.EnrichedEpisode) []domain.MissingEpisode {
	present := make(map[string]map[int]bool)
	for _, episode := range episodes {
		if episode.EpisodeNumber == nil {
			continue
		}
		if present[episode.ChannelName] == nil {
			present[episode.ChannelName] = make(map[int]bool)
		}
		present[episode.ChannelName][*episode.EpisodeNumber] = true
	}

	channels := make([]string, 0, len(present))
	for channel := range present {
		channels = append(channels, channel)
	}
	sort.Strings(channels)

	var missing []domain.MissingEpisode
	for _, channel := range channels {
		numbers := present[channel]

		min, max := 0, 0
		first := true
		for n := range numbers {
			if first || n < min {
				min = n
			}
			if first || n > max {
				max = n
			}
			first = false
		}

		for n := min; n <= max; n++ {
			if !numbers[n] {
				missing = append(missing, domain.MissingEpisode{
					ChannelName:   channel,
					EpisodeNumber: n,
				})
			}
		}
	}
	return missing
}
