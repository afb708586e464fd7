package collector

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"podcast-metrics/pkg/domain"
	"podcast-metrics/pkg/youtube"
)

// UnknownCategory is the sentinel label for category ids absent from the
// category table.
const UnknownCategory = "Unknown"

const runTimestampLayout = "2006-01-02 15:04:05"

// Collector extracts one RawEpisode per matching video per configured
// channel. It runs strictly sequentially: any API error aborts the whole
// run, per-field parse failures do not.
type Collector struct {
	api           *youtube.Client
	channels      []ChannelConfig
	region        string
	now           func() time.Time
	scrapeMissing bool
}

// New creates a collector over the given channel table.
func New(api *youtube.Client, channels []ChannelConfig) *Collector {
	return &Collector{
		api:      api,
		channels: channels,
		region:   "BR",
		now:      time.Now,
	}
}

// SetRegion overrides the region used for the category table.
func (c *Collector) SetRegion(region string) {
	c.region = region
}

// SetClock overrides the clock used for the run timestamp. Tests freeze it.
func (c *Collector) SetClock(now func() time.Time) {
	c.now = now
}

// SetScrapeMissing enables the best-effort watch-page fallback for video
// ids the details endpoint did not return.
func (c *Collector) SetScrapeMissing(enabled bool) {
	c.scrapeMissing = enabled
}

// Run extracts all channels and returns the accumulated raw records.
// One channel's failure aborts the run; there is no partial recovery.
func (c *Collector) Run(ctx context.Context) ([]domain.RawEpisode, error) {
	categories, err := c.api.Categories(ctx, c.region)
	if err != nil {
		return nil, fmt.Errorf("fetch category table: %w", err)
	}
	log.Printf("Collector: fetched %d categories", len(categories))

	runTimestamp := c.now().Format(runTimestampLayout)

	var episodes []domain.RawEpisode
	for _, channel := range c.channels {
		log.Printf("Collector: extracting channel %s", channel.Name)

		playlistID, err := c.api.UploadsPlaylistID(ctx, channel.ChannelID)
		if err != nil {
			return nil, fmt.Errorf("resolve uploads playlist for %s: %w", channel.Name, err)
		}

		videoIDs, err := c.api.PlaylistVideoIDs(ctx, playlistID)
		if err != nil {
			return nil, fmt.Errorf("collect video ids for %s: %w", channel.Name, err)
		}
		log.Printf("Collector: %s has %d videos", channel.Name, len(videoIDs))

		rows, err := c.processVideos(ctx, videoIDs, channel, categories, runTimestamp)
		if err != nil {
			return nil, fmt.Errorf("process videos for %s: %w", channel.Name, err)
		}

		episodes = append(episodes, rows...)
	}

	log.Printf("Collector: extracted %d episodes total", len(episodes))
	return episodes, nil
}

// processVideos fetches details in batches of at most 50 ids and emits a
// record for every video whose title matches the channel's patterns.
func (c *Collector) processVideos(ctx context.Context, videoIDs []string, channel ChannelConfig, categories map[string]string, runTimestamp string) ([]domain.RawEpisode, error) {
	var rows []domain.RawEpisode
	seen := make(map[string]bool, len(videoIDs))

	for start := 0; start < len(videoIDs); start += youtube.MaxDetailsBatch {
		end := start + youtube.MaxDetailsBatch
		if end > len(videoIDs) {
			end = len(videoIDs)
		}

		videos, err := c.api.VideoDetails(ctx, videoIDs[start:end])
		if err != nil {
			return nil, err
		}

		for _, video := range videos {
			seen[video.ID] = true
			if !titleMatches(video.Title, channel.TitlePatterns) {
				continue
			}

			log.Printf("Collector: extracting video: %s", video.Title)
			rows = append(rows, c.buildRecord(video, channel.Name, categories, runTimestamp))
		}
	}

	if c.scrapeMissing {
		rows = append(rows, c.scrapeAbsent(ctx, videoIDs, seen, channel, categories, runTimestamp)...)
	}

	return rows, nil
}

// scrapeAbsent resolves ids the details endpoint skipped via the watch
// page. Best effort: a scrape failure only logs.
func (c *Collector) scrapeAbsent(ctx context.Context, videoIDs []string, seen map[string]bool, channel ChannelConfig, categories map[string]string, runTimestamp string) []domain.RawEpisode {
	var rows []domain.RawEpisode
	for _, id := range videoIDs {
		if seen[id] {
			continue
		}

		video, err := c.api.ScrapeVideo(ctx, id)
		if err != nil {
			log.Printf("Collector: scrape fallback failed for %s: %v", id, err)
			continue
		}
		if !titleMatches(video.Title, channel.TitlePatterns) {
			continue
		}

		log.Printf("Collector: extracting video (scraped): %s", video.Title)
		rows = append(rows, c.buildRecord(*video, channel.Name, categories, runTimestamp))
	}
	return rows
}

// buildRecord populates a RawEpisode from one API item. Missing counters
// default to "0"; a duration that fails to parse leaves the field absent
// without dropping the record.
func (c *Collector) buildRecord(video youtube.Video, channelName string, categories map[string]string, runTimestamp string) domain.RawEpisode {
	var durationSeconds *int64
	if seconds, err := youtube.ParseDurationSeconds(video.Duration); err == nil {
		durationSeconds = &seconds
	}

	categoryName, ok := categories[video.CategoryID]
	if !ok {
		categoryName = UnknownCategory
	}

	return domain.RawEpisode{
		ChannelName:     channelName,
		VideoTitle:      video.Title,
		VideoID:         video.ID,
		DurationSeconds: durationSeconds,
		Description:     video.Description,
		PublishedAt:     video.PublishedAt,
		ViewCount:       defaultCount(video.ViewCount),
		LikeCount:       defaultCount(video.LikeCount),
		CommentCount:    defaultCount(video.CommentCount),
		CategoryID:      video.CategoryID,
		CategoryName:    categoryName,
		RunTimestamp:    runTimestamp,
	}
}

// titleMatches reports whether the title matches any channel pattern.
func titleMatches(title string, patterns []*regexp.Regexp) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(title) {
			return true
		}
	}
	return false
}

func defaultCount(value string) string {
	if value == "" {
		return "0"
	}
	return value
}
