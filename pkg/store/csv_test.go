package store

import (
	"context"
	"encoding/csv"
	"os"
	"testing"
	"time"

	"podcast-metrics/pkg/domain"
)

func int64Ptr(n int64) *int64 { return &n }
func intPtr(n int) *int       { return &n }

func sampleRaw() []domain.RawEpisode {
	return []domain.RawEpisode{
		{
			ChannelName:     "Podpah Podcast",
			VideoTitle:      "João Silva - Podpah #495",
			VideoID:         "vid-495",
			DurationSeconds: int64Ptr(7384),
			Description:     "Episódio completo",
			PublishedAt:     "2023-05-10T15:00:00Z",
			ViewCount:       "1000",
			LikeCount:       "100",
			CommentCount:    "10",
			CategoryID:      "24",
			CategoryName:    "Entertainment",
			RunTimestamp:    "2023-05-20 10:30:00",
		},
		{
			// No duration, defaulted counters.
			ChannelName:  "Flow Podcast",
			VideoTitle:   "RODRIGO CONSTANTINO",
			VideoID:      "vid-486",
			PublishedAt:  "2022-01-03T22:00:00Z",
			ViewCount:    "0",
			LikeCount:    "0",
			CommentCount: "0",
			CategoryID:   "99",
			CategoryName: "Unknown",
			RunTimestamp: "2023-05-20 10:30:00",
		},
	}
}

func TestCSVStoreRawRoundTrip(t *testing.T) {
	store := NewCSVStore(t.TempDir())
	ctx := context.Background()

	if err := store.SaveRaw(ctx, sampleRaw()); err != nil {
		t.Fatalf("SaveRaw failed: %v", err)
	}

	loaded, err := store.LoadRaw(ctx)
	if err != nil {
		t.Fatalf("LoadRaw failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(loaded))
	}

	first := loaded[0]
	if first.VideoID != "vid-495" || first.VideoTitle != "João Silva - Podpah #495" {
		t.Errorf("Unexpected first row: %+v", first)
	}
	if first.DurationSeconds == nil || *first.DurationSeconds != 7384 {
		t.Errorf("Duration did not survive the round trip: %v", first.DurationSeconds)
	}
	if first.ViewCount != "1000" || first.CategoryName != "Entertainment" {
		t.Errorf("Unexpected first row fields: %+v", first)
	}

	second := loaded[1]
	if second.DurationSeconds != nil {
		t.Errorf("Expected absent duration, got %d", *second.DurationSeconds)
	}
	if second.RunTimestamp != "2023-05-20 10:30:00" {
		t.Errorf("Unexpected run timestamp %q", second.RunTimestamp)
	}
}

func TestCSVStoreSaveRawOverwrites(t *testing.T) {
	store := NewCSVStore(t.TempDir())
	ctx := context.Background()

	if err := store.SaveRaw(ctx, sampleRaw()); err != nil {
		t.Fatalf("First SaveRaw failed: %v", err)
	}
	if err := store.SaveRaw(ctx, sampleRaw()[:1]); err != nil {
		t.Fatalf("Second SaveRaw failed: %v", err)
	}

	loaded, err := store.LoadRaw(ctx)
	if err != nil {
		t.Fatalf("LoadRaw failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("Expected the second save to replace the first, got %d rows", len(loaded))
	}
}

func TestCSVStoreSaveEnriched(t *testing.T) {
	store := NewCSVStore(t.TempDir())
	ctx := context.Background()

	local := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	rows := []domain.EnrichedEpisode{
		{
			RawEpisode:           sampleRaw()[0],
			GuestName:            "JOÃO SILVA",
			EpisodeNumber:        intPtr(495),
			Views:                1000,
			Likes:                100,
			Comments:             10,
			LikesPerView:         0.1,
			CommentsPerView:      0.01,
			PublishedAtLocal:     &local,
			PublishedMonthYear:   "05/2023",
			PublishedYear:        "2023",
			PublishedMonth:       "05",
			PublishedTime:        "12:00",
			WeekdayName:          "quarta-feira",
			DayPeriod:            "AFTERNOON",
			DaysSincePublication: intPtr(10),
		},
		{
			// Date conversion failed for this one; derived fields absent.
			RawEpisode: sampleRaw()[1],
		},
	}

	if err := store.SaveEnriched(ctx, rows); err != nil {
		t.Fatalf("SaveEnriched failed: %v", err)
	}

	records := readCSV(t, store.EnrichedPath())
	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d records", len(records))
	}
	if len(records[0]) != len(enrichedHeader) {
		t.Errorf("Header has %d columns, want %d", len(records[0]), len(enrichedHeader))
	}

	byName := make(map[string]string, len(records[0]))
	for i, column := range records[0] {
		byName[column] = records[1][i]
	}
	if byName["guest_name"] != "JOÃO SILVA" {
		t.Errorf("Unexpected guest_name %q", byName["guest_name"])
	}
	if byName["episode_number"] != "495" {
		t.Errorf("Unexpected episode_number %q", byName["episode_number"])
	}
	if byName["likes_per_view"] != "0.1" {
		t.Errorf("Unexpected likes_per_view %q", byName["likes_per_view"])
	}
	if byName["published_at_local"] != "2023-05-10 12:00:00" {
		t.Errorf("Unexpected published_at_local %q", byName["published_at_local"])
	}
	if byName["days_since_publication"] != "10" {
		t.Errorf("Unexpected days_since_publication %q", byName["days_since_publication"])
	}

	// The failed-date row renders its derived date fields empty.
	for i, column := range records[0] {
		byName[column] = records[2][i]
	}
	if byName["published_at_local"] != "" || byName["days_since_publication"] != "" {
		t.Errorf("Expected empty date fields, got %q / %q",
			byName["published_at_local"], byName["days_since_publication"])
	}
	if byName["episode_number"] != "" {
		t.Errorf("Expected empty episode_number, got %q", byName["episode_number"])
	}
}

func TestCSVStoreSaveMissingReport(t *testing.T) {
	store := NewCSVStore(t.TempDir())
	ctx := context.Background()

	rows := []domain.MissingEpisode{
		{ChannelName: "Podpah Podcast", EpisodeNumber: 3},
		{ChannelName: "Podpah Podcast", EpisodeNumber: 6},
	}

	if err := store.SaveMissingReport(ctx, rows); err != nil {
		t.Fatalf("SaveMissingReport failed: %v", err)
	}

	records := readCSV(t, store.ReportPath())
	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d records", len(records))
	}
	if records[1][0] != "Podpah Podcast" || records[1][1] != "3" {
		t.Errorf("Unexpected first report row: %v", records[1])
	}
	if records[2][1] != "6" {
		t.Errorf("Unexpected second report row: %v", records[2])
	}
}

func TestCSVStoreLoadRawMissingFile(t *testing.T) {
	store := NewCSVStore(t.TempDir())

	if _, err := store.LoadRaw(context.Background()); err == nil {
		t.Error("Expected error when the raw table does not exist, got nil")
	}
}

func TestCSVStoreLoadRawWrongColumns(t *testing.T) {
	dir := t.TempDir()
	store := NewCSVStore(dir)

	if err := os.WriteFile(store.RawPath(), []byte("a,b,c\n1,2,3\n"), 0o644); err != nil {
		t.Fatalf("Failed to seed malformed file: %v", err)
	}

	if _, err := store.LoadRaw(context.Background()); err == nil {
		t.Error("Expected error for wrong column count, got nil")
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return records
}
