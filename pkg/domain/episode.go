package domain

import "time"

// RawEpisode is one matched video exactly as the collector saw it.
//
// Engagement counters stay as the API returned them (strings, possibly
// with thousands separators); cleanup is the normalizer's job. This is
// intentionally separate from EnrichedEpisode so a normalize-only run
// can replay a previous extraction from the raw table.
type RawEpisode struct {
	// ChannelName is the configured channel label at extraction time.
	// The normalizer may relabel it into a sub-brand.
	ChannelName string `bson:"channel_name" json:"channel_name"`

	// VideoTitle is the raw title, emoji and formatting variance included.
	VideoTitle string `bson:"video_title" json:"video_title"`

	// VideoID is the platform's stable video identifier, unique per run.
	VideoID string `bson:"video_id" json:"video_id"`

	// DurationSeconds is nil when the ISO-8601 duration failed to parse.
	DurationSeconds *int64 `bson:"duration_seconds,omitempty" json:"duration_seconds,omitempty"`

	Description string `bson:"description" json:"description"`

	// PublishedAt is the ISO-8601 UTC timestamp as returned by the API.
	PublishedAt string `bson:"published_at" json:"published_at"`

	ViewCount    string `bson:"view_count" json:"view_count"`
	LikeCount    string `bson:"like_count" json:"like_count"`
	CommentCount string `bson:"comment_count" json:"comment_count"`

	CategoryID   string `bson:"category_id" json:"category_id"`
	CategoryName string `bson:"category_name" json:"category_name"`

	// RunTimestamp records when the extraction ran (audit only).
	RunTimestamp string `bson:"run_timestamp" json:"run_timestamp"`
}

// EnrichedEpisode is a RawEpisode after the full normalization pipeline:
// relabeled channel, cleaned title, recovered structured fields, and
// date-derived features. All date-derived fields are empty/nil when the
// publish timestamp could not be converted.
type EnrichedEpisode struct {
	RawEpisode `bson:",inline"`

	// GuestName is the cleaned title with known brand/episode suffixes
	// stripped; when no suffix matches it is the full cleaned title
	// (usually a free-form topic description).
	GuestName string `bson:"guest_name" json:"guest_name"`

	// EpisodeNumber is nil when the title carries no #digits marker and
	// is not the one known exception episode.
	EpisodeNumber *int `bson:"episode_number,omitempty" json:"episode_number,omitempty"`

	// Views, Likes and Comments are the cleaned integer counters.
	Views    int64 `bson:"views" json:"views"`
	Likes    int64 `bson:"likes" json:"likes"`
	Comments int64 `bson:"comments" json:"comments"`

	// LikesPerView and CommentsPerView are exactly 0 when Views is 0.
	LikesPerView    float64 `bson:"likes_per_view" json:"likes_per_view"`
	CommentsPerView float64 `bson:"comments_per_view" json:"comments_per_view"`

	// PublishedAtLocal is the publish instant converted to the fixed
	// local timezone; nil when the timestamp failed to parse.
	PublishedAtLocal *time.Time `bson:"published_at_local,omitempty" json:"published_at_local,omitempty"`

	PublishedMonthYear string `bson:"published_month_year" json:"published_month_year"` // MM/YYYY
	PublishedYear      string `bson:"published_year" json:"published_year"`
	PublishedMonth     string `bson:"published_month" json:"published_month"`
	PublishedTime      string `bson:"published_time" json:"published_time"` // HH:MM

	// WeekdayName comes from a fixed Monday-first lookup.
	WeekdayName string `bson:"weekday_name" json:"weekday_name"`

	// DayPeriod is one of DAY, AFTERNOON, NIGHT, LATE_NIGHT.
	DayPeriod string `bson:"day_period" json:"day_period"`

	// DaysSincePublication is measured against the run's current local
	// time; nil when PublishedAtLocal is nil.
	DaysSincePublication *int `bson:"days_since_publication,omitempty" json:"days_since_publication,omitempty"`
}

// MissingEpisode is one gap in a channel's episode numbering: an integer
// strictly between the channel's observed minimum and maximum that has
// no matching record.
type MissingEpisode struct {
	ChannelName   string `bson:"channel_name" json:"channel_name"`
	EpisodeNumber int    `bson:"episode_number" json:"episode_number"`
}
