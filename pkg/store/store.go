// Package store persists the two output tables (raw and enriched
// episodes) and the missing-episode report. CSV files are the primary
// tabular store and the handoff between the two stages; the MongoDB,
// Postgres and Supabase backends are optional sinks behind the same
// surface. Every backend rewrites its output in full on each run.
package store

import (
	"context"

	"podcast-metrics/pkg/domain"
)

// LocalTimeLayout renders the converted publish timestamp without a zone
// annotation.
const LocalTimeLayout = "2006-01-02 15:04:05"

// Store is a sink for one run's output tables.
type Store interface {
	SaveRaw(ctx context.Context, rows []domain.RawEpisode) error
	SaveEnriched(ctx context.Context, rows []domain.EnrichedEpisode) error
	SaveMissingReport(ctx context.Context, rows []domain.MissingEpisode) error
}
