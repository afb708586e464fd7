package feed

import (
	"fmt"
	"regexp"

	"github.com/mmcdole/gofeed"
)

const defaultFeedBaseURL = "https://www.youtube.com/feeds/videos.xml"

var videoIDRE = regexp.MustCompile(`(?:youtube\.com/watch\?(?:.*&)?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// Entry is one upload listed in a channel's public Atom feed.
type Entry struct {
	VideoID   string
	Title     string
	Link      string
	Published string
}

// Fetcher lists a channel's latest uploads from its public feed. The
// feed only exposes the most recent uploads and costs no API quota,
// which makes it useful for previewing a channel before a full run.
type Fetcher struct {
	feedParser *gofeed.Parser
	baseURL    string
}

// NewFetcher creates a new feed fetcher
func NewFetcher() *Fetcher {
	return &Fetcher{
		feedParser: gofeed.NewParser(),
		baseURL:    defaultFeedBaseURL,
	}
}

// NewFetcherWithBaseURL points the fetcher at an alternative feed host.
// Used by tests to stand in a local fake server.
func NewFetcherWithBaseURL(baseURL string) *Fetcher {
	f := NewFetcher()
	f.baseURL = baseURL
	return f
}

// LatestUploads fetches and parses the channel's upload feed.
func (f *Fetcher) LatestUploads(channelID string) ([]Entry, error) {
	feedURL := fmt.Sprintf("%s?channel_id=%s", f.baseURL, channelID)

	parsed, err := f.feedParser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse uploads feed: %w", err)
	}

	if parsed == nil || len(parsed.Items) == 0 {
		return nil, fmt.Errorf("uploads feed contains no items")
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.Link == "" {
			continue
		}
		entries = append(entries, Entry{
			VideoID:   extractVideoID(item.Link),
			Title:     item.Title,
			Link:      item.Link,
			Published: item.Published,
		})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid entries found in uploads feed")
	}

	return entries, nil
}

// extractVideoID pulls the 11-char video ID from any watch URL format.
func extractVideoID(rawURL string) string {
	m := videoIDRE.FindStringSubmatch(rawURL)
	if len(m) >= 2 {
		return m[1]
	}
	return ""
}
