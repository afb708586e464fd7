// Package normalizer turns raw episode records into the analysis-ready
// table: an ordered sequence of cleaning and derivation stages over the
// full row set, followed by missing-episode detection. Everything is
// pure and sequential; the only ambient inputs (current time, timezone)
// are explicit options so tests can freeze them.
package normalizer

import (
	"fmt"
	"log"
	"time"

	"podcast-metrics/pkg/domain"
)

// Options configure one enrichment run.
type Options struct {
	// Now is the processing run's current time, used for
	// days-since-publication. Zero means time.Now().
	Now time.Time

	// Location is the fixed local timezone. Nil means DefaultTimezone.
	Location *time.Location

	// StrictDates makes a publish-timestamp conversion failure abort
	// the run instead of logging and leaving the local fields absent.
	StrictDates bool
}

// Enrich applies the full stage pipeline: title filter, channel relabel,
// title cleanup, guest extraction, episode-number extraction, numeric
// cleanup, ratios, timezone conversion and date-derived features.
// Stage order is fixed; every stage sees the previous stage's output.
func Enrich(rows []domain.RawEpisode, opts Options) ([]domain.EnrichedEpisode, error) {
	loc := opts.Location
	if loc == nil {
		var err error
		loc, err = time.LoadLocation(DefaultTimezone)
		if err != nil {
			return nil, fmt.Errorf("load timezone %s: %w", DefaultTimezone, err)
		}
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.In(loc)

	kept := FilterEpisodes(rows)
	log.Printf("Normalizer: kept %d of %d rows after title filter", len(kept), len(rows))

	enriched := make([]domain.EnrichedEpisode, 0, len(kept))
	for _, row := range kept {
		episode, err := enrichRow(row, now, loc, opts.StrictDates)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, episode)
	}
	return enriched, nil
}

// enrichRow derives every column for one row. Date-derived fields stay
// absent when the publish timestamp cannot be converted.
func enrichRow(row domain.RawEpisode, now time.Time, loc *time.Location, strictDates bool) (domain.EnrichedEpisode, error) {
	episode := domain.EnrichedEpisode{RawEpisode: row}

	// Relabel inspects the raw title; cleanup overwrites it afterwards.
	episode.ChannelName = RelabelChannel(row.VideoTitle, row.ChannelName)
	episode.VideoTitle = CleanTitle(row.VideoTitle)
	episode.GuestName = GuestName(episode.VideoTitle)
	episode.EpisodeNumber = EpisodeNumber(episode.VideoTitle)

	episode.Views = CleanCount(row.ViewCount)
	episode.Likes = CleanCount(row.LikeCount)
	episode.Comments = CleanCount(row.CommentCount)
	episode.LikesPerView = SafeRatio(episode.Likes, episode.Views)
	episode.CommentsPerView = SafeRatio(episode.Comments, episode.Views)

	local, err := ToLocal(row.PublishedAt, loc)
	if err != nil {
		if strictDates {
			return domain.EnrichedEpisode{}, fmt.Errorf("video %s: %w", row.VideoID, err)
		}
		log.Printf("Normalizer: could not convert publish date for video %s: %v", row.VideoID, err)
		return episode, nil
	}

	episode.PublishedAtLocal = &local
	episode.PublishedMonthYear = local.Format("01/2006")
	episode.PublishedYear = local.Format("2006")
	episode.PublishedMonth = local.Format("01")
	episode.PublishedTime = local.Format("15:04")
	episode.WeekdayName = WeekdayName(local)
	episode.DayPeriod = DayPeriod(local)

	days := DaysSince(now, local)
	episode.DaysSincePublication = &days

	return episode, nil
}
