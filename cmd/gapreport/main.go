package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"podcast-metrics/pkg/normalizer"
	"podcast-metrics/pkg/store"
)

// gapreport re-derives the missing-episode report from an existing raw
// table and prints it, without touching any output file.
func main() {
	dataDir := flag.String("data", "data", "Directory holding the raw episode table")
	flag.Parse()

	ctx := context.Background()
	csvStore := store.NewCSVStore(*dataDir)

	rows, err := csvStore.LoadRaw(ctx)
	if err != nil {
		log.Fatalf("Failed to load raw table: %v", err)
	}

	enriched, err := normalizer.Enrich(rows, normalizer.Options{})
	if err != nil {
		log.Fatalf("Normalization failed: %v", err)
	}

	missing := normalizer.MissingEpisodes(enriched)
	if len(missing) == 0 {
		fmt.Println("No missing episodes detected.")
		return
	}

	current := ""
	for _, gap := range missing {
		if gap.ChannelName != current {
			current = gap.ChannelName
			fmt.Printf("\n%s:\n", current)
		}
		fmt.Printf("  #%d\n", gap.EpisodeNumber)
	}
}
