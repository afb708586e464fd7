package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"podcast-metrics/pkg/domain"
)

const (
	rawFileName      = "episodes_raw.csv"
	enrichedFileName = "episodes_clean.csv"
	reportFileName   = "missing_episodes.csv"
)

var rawHeader = []string{
	"channel_name", "video_title", "video_id", "duration_seconds",
	"description", "published_at", "view_count", "like_count",
	"comment_count", "category_id", "category_name", "run_timestamp",
}

var enrichedHeader = append(append([]string{}, rawHeader...),
	"guest_name", "episode_number", "views", "likes", "comments",
	"likes_per_view", "comments_per_view", "published_at_local",
	"published_month_year", "published_year", "published_month",
	"published_time", "weekday_name", "day_period",
	"days_since_publication",
)

var reportHeader = []string{"channel_name", "missing_episode"}

// CSVStore writes the output tables as CSV files in one directory,
// overwriting the previous run in place. It also reads the raw table
// back so the normalizer can run without re-collecting.
type CSVStore struct {
	dir string
}

// NewCSVStore creates a CSV store rooted at dir.
func NewCSVStore(dir string) *CSVStore {
	return &CSVStore{dir: dir}
}

// RawPath returns the raw table's file path.
func (s *CSVStore) RawPath() string {
	return filepath.Join(s.dir, rawFileName)
}

// EnrichedPath returns the enriched table's file path.
func (s *CSVStore) EnrichedPath() string {
	return filepath.Join(s.dir, enrichedFileName)
}

// ReportPath returns the missing-episode report's file path.
func (s *CSVStore) ReportPath() string {
	return filepath.Join(s.dir, reportFileName)
}

// SaveRaw writes the raw table.
func (s *CSVStore) SaveRaw(ctx context.Context, rows []domain.RawEpisode) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, rawRecord(row))
	}
	return s.writeFile(s.RawPath(), rawHeader, records)
}

// SaveEnriched writes the enriched table.
func (s *CSVStore) SaveEnriched(ctx context.Context, rows []domain.EnrichedEpisode) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, enrichedRecord(row))
	}
	return s.writeFile(s.EnrichedPath(), enrichedHeader, records)
}

// SaveMissingReport writes the missing-episode report.
func (s *CSVStore) SaveMissingReport(ctx context.Context, rows []domain.MissingEpisode) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{row.ChannelName, strconv.Itoa(row.EpisodeNumber)})
	}
	return s.writeFile(s.ReportPath(), reportHeader, records)
}

// LoadRaw reads the raw table back for a normalize-only run.
func (s *CSVStore) LoadRaw(ctx context.Context) ([]domain.RawEpisode, error) {
	file, err := os.Open(s.RawPath())
	if err != nil {
		return nil, fmt.Errorf("open raw table: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read raw table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("raw table %s is empty", s.RawPath())
	}
	if len(records[0]) != len(rawHeader) {
		return nil, fmt.Errorf("raw table has %d columns, want %d", len(records[0]), len(rawHeader))
	}

	rows := make([]domain.RawEpisode, 0, len(records)-1)
	for _, record := range records[1:] {
		row := domain.RawEpisode{
			ChannelName:  record[0],
			VideoTitle:   record[1],
			VideoID:      record[2],
			Description:  record[4],
			PublishedAt:  record[5],
			ViewCount:    record[6],
			LikeCount:    record[7],
			CommentCount: record[8],
			CategoryID:   record[9],
			CategoryName: record[10],
			RunTimestamp: record[11],
		}
		if record[3] != "" {
			seconds, err := strconv.ParseInt(record[3], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("video %s: invalid duration_seconds %q", row.VideoID, record[3])
			}
			row.DurationSeconds = &seconds
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// writeFile writes header plus records to path, replacing any previous
// file.
func (s *CSVStore) writeFile(path string, header []string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header to %s: %w", path, err)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row to %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func rawRecord(row domain.RawEpisode) []string {
	duration := ""
	if row.DurationSeconds != nil {
		duration = strconv.FormatInt(*row.DurationSeconds, 10)
	}
	return []string{
		row.ChannelName, row.VideoTitle, row.VideoID, duration,
		row.Description, row.PublishedAt, row.ViewCount, row.LikeCount,
		row.CommentCount, row.CategoryID, row.CategoryName, row.RunTimestamp,
	}
}

func enrichedRecord(row domain.EnrichedEpisode) []string {
	record := rawRecord(row.RawEpisode)

	episodeNumber := ""
	if row.EpisodeNumber != nil {
		episodeNumber = strconv.Itoa(*row.EpisodeNumber)
	}
	localTime := ""
	if row.PublishedAtLocal != nil {
		localTime = row.PublishedAtLocal.Format(LocalTimeLayout)
	}
	daysSince := ""
	if row.DaysSincePublication != nil {
		daysSince = strconv.Itoa(*row.DaysSincePublication)
	}

	return append(record,
		row.GuestName,
		episodeNumber,
		strconv.FormatInt(row.Views, 10),
		strconv.FormatInt(row.Likes, 10),
		strconv.FormatInt(row.Comments, 10),
		strconv.FormatFloat(row.LikesPerView, 'f', -1, 64),
		strconv.FormatFloat(row.CommentsPerView, 'f', -1, 64),
		localTime,
		row.PublishedMonthYear,
		row.PublishedYear,
		row.PublishedMonth,
		row.PublishedTime,
		row.WeekdayName,
		row.DayPeriod,
		daysSince,
	)
}
