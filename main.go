package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"podcast-metrics/pkg/collector"
	"podcast-metrics/pkg/domain"
	"podcast-metrics/pkg/feed"
	"podcast-metrics/pkg/normalizer"
	"podcast-metrics/pkg/store"
	"podcast-metrics/pkg/youtube"
)

func main() {
	var (
		outDir        = flag.String("out", "data", "Directory for the raw/enriched CSV tables and the missing-episode report")
		region        = flag.String("region", "BR", "Region code for the video category table")
		skipCollect   = flag.Bool("skip-collect", false, "Skip extraction and normalize the existing raw table")
		preview       = flag.Bool("preview", false, "List each channel's latest uploads from the public feed (no API quota) and exit")
		scrapeMissing = flag.Bool("scrape-missing", false, "Resolve video ids absent from the details endpoint via the public watch page (best effort)")
		strictDates   = flag.Bool("strict-dates", false, "Abort the run on a publish-date conversion failure instead of logging it")

		mongoURI = flag.String("mongo-uri", "", "Optional MongoDB connection string to mirror the tables into")
		mongoDB  = flag.String("mongo-db", "podcasts", "MongoDB database name")

		postgresDSN = flag.String("postgres-dsn", "", "Optional Postgres DSN to mirror the tables into")

		supabaseURL      = flag.String("supabase-url", "", "Optional Supabase project URL to mirror the tables into")
		supabaseKey      = flag.String("supabase-key", "", "Supabase API key")
		supabasePassword = flag.String("supabase-password", "", "Supabase database password (enables direct DB mode)")
	)
	flag.Parse()

	// API credential injection only; absence is fine for -skip-collect
	// and -preview runs.
	_ = godotenv.Load()
	apiKey := os.Getenv("YOUTUBE_API_KEY")

	ctx := context.Background()
	channels := collector.DefaultChannels()

	if *preview {
		previewChannels(channels)
		return
	}

	start := time.Now()
	csvStore := store.NewCSVStore(*outDir)

	var rows []domain.RawEpisode
	var err error

	if *skipCollect {
		rows, err = csvStore.LoadRaw(ctx)
		if err != nil {
			log.Fatalf("Failed to load raw table: %v", err)
		}
		log.Printf("Loaded %d raw rows from %s", len(rows), csvStore.RawPath())
	} else {
		if apiKey == "" {
			log.Fatalf("YOUTUBE_API_KEY is not set (checked environment and .env)")
		}

		col := collector.New(youtube.NewClient(apiKey), channels)
		col.SetRegion(*region)
		col.SetScrapeMissing(*scrapeMissing)

		rows, err = col.Run(ctx)
		if err != nil {
			log.Fatalf("Extraction failed: %v", err)
		}
		if err := csvStore.SaveRaw(ctx, rows); err != nil {
			log.Fatalf("Failed to write raw table: %v", err)
		}
		log.Printf("Raw table written to %s", csvStore.RawPath())
	}

	enriched, err := normalizer.Enrich(rows, normalizer.Options{StrictDates: *strictDates})
	if err != nil {
		log.Fatalf("Normalization failed: %v", err)
	}
	missing := normalizer.MissingEpisodes(enriched)

	if err := csvStore.SaveEnriched(ctx, enriched); err != nil {
		log.Fatalf("Failed to write enriched table: %v", err)
	}
	if err := csvStore.SaveMissingReport(ctx, missing); err != nil {
		log.Fatalf("Failed to write missing-episode report: %v", err)
	}
	log.Printf("Enriched table written to %s (%d rows, %d missing episodes)", csvStore.EnrichedPath(), len(enriched), len(missing))

	mirrorRemote(ctx, rows, enriched, missing, *mongoURI, *mongoDB, *postgresDSN, *supabaseURL, *supabaseKey, *supabasePassword)

	log.Printf("Done. Duration: %s", time.Since(start))
}

// previewChannels lists the latest uploads per channel from the public
// feed. Read-only; nothing is written.
func previewChannels(channels []collector.ChannelConfig) {
	fetcher := feed.NewFetcher()
	for _, channel := range channels {
		entries, err := fetcher.LatestUploads(channel.ChannelID)
		if err != nil {
			log.Printf("Preview: %s: %v", channel.Name, err)
			continue
		}

		fmt.Printf("%s: %d recent uploads\n", channel.Name, len(entries))
		for _, entry := range entries {
			fmt.Printf("  [%s] %s\n", entry.Published, entry.Title)
		}
		fmt.Println()
	}
}

// mirrorRemote pushes this run's tables into whichever optional remote
// sinks were configured. A sink failure is fatal: the run's contract is
// that configured outputs are either all written or the exit status says
// otherwise.
func mirrorRemote(ctx context.Context, rows []domain.RawEpisode, enriched []domain.EnrichedEpisode, missing []domain.MissingEpisode, mongoURI, mongoDB, postgresDSN, supabaseURL, supabaseKey, supabasePassword string) {
	if mongoURI != "" {
		mongoStore := store.NewMongoStore(mongoURI, mongoDB)
		if err := mongoStore.Connect(ctx); err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoStore.Close(ctx)
		saveAll(ctx, mongoStore, rows, enriched, missing, "MongoDB")
	}

	if postgresDSN != "" {
		pgStore := store.NewPostgresStore(store.PostgresConfig{DSN: postgresDSN})
		if err := pgStore.Connect(ctx); err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		defer pgStore.Close()
		saveAll(ctx, pgStore, rows, enriched, missing, "Postgres")
	}

	if supabaseURL != "" {
		sbStore := store.NewSupabaseStore(store.SupabaseConfig{
			SupabaseURL: supabaseURL,
			SupabaseKey: supabaseKey,
			Password:    supabasePassword,
		})
		if err := sbStore.Connect(ctx); err != nil {
			log.Fatalf("Failed to connect to Supabase: %v", err)
		}
		defer sbStore.Close()
		saveAll(ctx, sbStore, rows, enriched, missing, "Supabase")
	}
}

func saveAll(ctx context.Context, sink store.Store, rows []domain.RawEpisode, enriched []domain.EnrichedEpisode, missing []domain.MissingEpisode, name string) {
	if err := sink.SaveRaw(ctx, rows); err != nil {
		log.Fatalf("Failed to save raw table to %s: %v", name, err)
	}
	if err := sink.SaveEnriched(ctx, enriched); err != nil {
		log.Fatalf("Failed to save enriched table to %s: %v", name, err)
	}
	if err := sink.SaveMissingReport(ctx, missing); err != nil {
		log.Fatalf("Failed to save missing-episode report to %s: %v", name, err)
	}
	log.Printf("Tables mirrored to %s", name)
}
