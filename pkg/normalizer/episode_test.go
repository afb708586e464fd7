package normalizer

import (
	"testing"

	"podcast-metrics/pkg/domain"
)

func intPtr(n int) *int { return &n }

func TestEpisodeNumber(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  *int
	}{
		{"podpah dash format", "PODPAH - #495", intPtr(495)},
		{"spaced hash", "PODPAH DE VERÃO # 405", intPtr(405)},
		{"flow podcast", "FLOW PODCAST #123 - JOÃO", intPtr(123)},
		{"first match wins", "FLOW #10 E #20", intPtr(10)},
		{"exception title", "RODRIGO CONSTANTINO", intPtr(486)},
		{"exception title untrimmed", "  rodrigo constantino ", intPtr(486)},
		{"no marker", "SOME UNRELATED VIDEO", nil},
		{"hash without digits", "FLOW #", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EpisodeNumber(tt.title)
			switch {
			case got == nil && tt.want != nil:
				t.Errorf("EpisodeNumber(%q) = nil, want %d", tt.title, *tt.want)
			case got != nil && tt.want == nil:
				t.Errorf("EpisodeNumber(%q) = %d, want nil", tt.title, *got)
			case got != nil && tt.want != nil && *got != *tt.want:
				t.Errorf("EpisodeNumber(%q) = %d, want %d", tt.title, *got, *tt.want)
			}
		})
	}
}

func episodeWithNumber(channel string, number int) domain.EnrichedEpisode {
	return domain.EnrichedEpisode{
		RawEpisode:    domain.RawEpisode{ChannelName: channel},
		EpisodeNumber: intPtr(number),
	}
}

func TestMissingEpisodes(t *testing.T) {
	episodes := []domain.EnrichedEpisode{
		episodeWithNumber("Podpah Podcast", 1),
		episodeWithNumber("Podpah Podcast", 2),
		episodeWithNumber("Podpah Podcast", 4),
		episodeWithNumber("Podpah Podcast", 5),
		episodeWithNumber("Podpah Podcast", 7),
	}

	missing := MissingEpisodes(episodes)

	if len(missing) != 2 {
		t.Fatalf("Expected 2 missing episodes, got %d: %v", len(missing), missing)
	}
	if missing[0].EpisodeNumber != 3 || missing[1].EpisodeNumber != 6 {
		t.Errorf("Expected gaps {3, 6}, got {%d, %d}", missing[0].EpisodeNumber, missing[1].EpisodeNumber)
	}
	for _, gap := range missing {
		if gap.ChannelName != "Podpah Podcast" {
			t.Errorf("Gap attributed to wrong channel: %q", gap.ChannelName)
		}
	}
}

func TestMissingEpisodesSkipsUnresolvableChannels(t *testing.T) {
	episodes := []domain.EnrichedEpisode{
		{RawEpisode: domain.RawEpisode{ChannelName: "Flow 2.0"}}, // no number
		episodeWithNumber("Podpah Podcast", 1),
		episodeWithNumber("Podpah Podcast", 3),
	}

	missing := MissingEpisodes(episodes)

	if len(missing) != 1 {
		t.Fatalf("Expected 1 missing episode, got %d: %v", len(missing), missing)
	}
	if missing[0].ChannelName != "Podpah Podcast" || missing[0].EpisodeNumber != 2 {
		t.Errorf("Expected Podpah Podcast #2, got %s #%d", missing[0].ChannelName, missing[0].EpisodeNumber)
	}
}

func TestMissingEpisodesNoGaps(t *testing.T) {
	episodes := []domain.EnrichedEpisode{
		episodeWithNumber("Flow 1.0", 10),
		episodeWithNumber("Flow 1.0", 11),
	}

	if missing := MissingEpisodes(episodes); len(missing) != 0 {
		t.Errorf("Expected no gaps, got %v", missing)
	}
}

func TestMissingEpisodesSortedByChannel(t *testing.T) {
	episodes := []domain.EnrichedEpisode{
		episodeWithNumber("Podpah Podcast", 1),
		episodeWithNumber("Podpah Podcast", 3),
		episodeWithNumber("Flow 1.0", 5),
		episodeWithNumber("Flow 1.0", 7),
	}

	missing := MissingEpisodes(episodes)

	if len(missing) != 2 {
		t.Fatalf("Expected 2 missing episodes, got %d", len(missing))
	}
	if missing[0].ChannelName != "Flow 1.0" || missing[1].ChannelName != "Podpah Podcast" {
		t.Errorf("Report not sorted by channel: %v", missing)
	}
}
