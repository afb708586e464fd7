package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"podcast-metrics/pkg/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
	supabase "github.com/supabase-community/supabase-go"
)

// SupabaseConfig holds configuration required to connect to Supabase.
type SupabaseConfig struct {
	// ConnectionString is the Supabase Postgres connection string.
	// If not provided, it is constructed from SupabaseURL and Password.
	ConnectionString string

	// SupabaseURL is the project URL, e.g. "https://[project-ref].supabase.co".
	SupabaseURL string

	// SupabaseKey is the API key (service_role for server-side writes).
	SupabaseKey string

	// Password is the database password (required if ConnectionString
	// not provided and direct DB access is wanted).
	Password string

	// Optional pool tuning knobs for the direct connection.
	MaxOpenConns int
	MaxIdleConns int
	ConnMaxIdle  time.Duration
	ConnMaxLife  time.Duration
}

// SupabaseStore persists episode tables to a Supabase project: through a
// direct Postgres connection when a password or connection string is
// available, through the REST API otherwise.
type SupabaseStore struct {
	pg          *PostgresStore
	supabaseSDK *supabase.Client
	cfg         SupabaseConfig
}

// NewSupabaseStore constructs a Supabase store.
func NewSupabaseStore(cfg SupabaseConfig) *SupabaseStore {
	return &SupabaseStore{cfg: cfg}
}

// Connect initializes the REST client and, when credentials allow, the
// direct database connection. With only URL and key it runs in REST
// mode; schema management is then left to the project's migrations.
func (s *SupabaseStore) Connect(ctx context.Context) error {
	if s.cfg.SupabaseURL != "" && s.cfg.SupabaseKey != "" {
		sdkClient, err := supabase.NewClient(s.cfg.SupabaseURL, s.cfg.SupabaseKey, nil)
		if err != nil {
			return fmt.Errorf("initialize supabase SDK: %w", err)
		}
		s.supabaseSDK = sdkClient
	}

	connStr := s.cfg.ConnectionString
	if connStr == "" && s.cfg.Password != "" {
		var err error
		connStr, err = s.buildConnectionString()
		if err != nil {
			if s.supabaseSDK != nil {
				return nil // REST mode only
			}
			return fmt.Errorf("build connection string: %w", err)
		}
	}

	if connStr != "" {
		pg := NewPostgresStore(PostgresConfig{
			DSN:          s.addConnectionParam(connStr, "statement_cache_capacity", "0"),
			MaxOpenConns: s.cfg.MaxOpenConns,
			MaxIdleConns: s.cfg.MaxIdleConns,
			ConnMaxIdle:  s.cfg.ConnMaxIdle,
			ConnMaxLife:  s.cfg.ConnMaxLife,
		})
		if err := pg.Connect(ctx); err != nil {
			if s.supabaseSDK != nil {
				return nil // REST mode only
			}
			return fmt.Errorf("connect supabase postgres: %w", err)
		}
		s.pg = pg
	}

	if s.pg == nil && s.supabaseSDK == nil {
		return fmt.Errorf("either connection string/password or Supabase URL+key must be provided")
	}
	return nil
}

// Close closes the direct database connection, if any.
func (s *SupabaseStore) Close() error {
	if s.pg == nil {
		return nil
	}
	return s.pg.Close()
}

// HasDirectDB returns true if direct database connection is available.
func (s *SupabaseStore) HasDirectDB() bool {
	return s.pg != nil
}

// DB exposes the direct handle, or nil in REST mode.
func (s *SupabaseStore) DB() *sql.DB {
	if s.pg == nil {
		return nil
	}
	return s.pg.DB()
}

// SaveRaw persists the raw table.
func (s *SupabaseStore) SaveRaw(ctx context.Context, rows []domain.RawEpisode) error {
	if s.pg != nil {
		return s.pg.SaveRaw(ctx, rows)
	}
	return s.restUpsert("raw_episodes", "video_id", rows)
}

// SaveEnriched persists the enriched table.
func (s *SupabaseStore) SaveEnriched(ctx context.Context, rows []domain.EnrichedEpisode) error {
	if s.pg != nil {
		return s.pg.SaveEnriched(ctx, rows)
	}
	return s.restUpsert("episodes", "video_id", rows)
}

// SaveMissingReport persists the missing-episode report.
func (s *SupabaseStore) SaveMissingReport(ctx context.Context, rows []domain.MissingEpisode) error {
	if s.pg != nil {
		return s.pg.SaveMissingReport(ctx, rows)
	}

	// PostgREST refuses unfiltered deletes; the impossible filter
	// matches every real row.
	if _, _, err := s.supabaseSDK.From("missing_episodes").Delete("", "").Neq("channel_name", "").Execute(); err != nil {
		return fmt.Errorf("clear missing-episode report: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}
	if _, _, err := s.supabaseSDK.From("missing_episodes").Insert(rows, false, "", "minimal", "").Execute(); err != nil {
		return fmt.Errorf("insert missing-episode report: %w", err)
	}
	return nil
}

func (s *SupabaseStore) restUpsert(table, onConflict string, rows interface{}) error {
	if s.supabaseSDK == nil {
		return fmt.Errorf("supabase store not connected")
	}
	if _, _, err := s.supabaseSDK.From(table).Insert(rows, true, onConflict, "minimal", "").Execute(); err != nil {
		return fmt.Errorf("upsert into %s: %w", table, err)
	}
	return nil
}

// buildConnectionString constructs a Supabase Postgres connection string
// from URL and password.
func (s *SupabaseStore) buildConnectionString() (string, error) {
	if s.cfg.SupabaseURL == "" {
		return "", fmt.Errorf("supabase URL is required when connection string is not provided")
	}
	if s.cfg.Password == "" {
		return "", fmt.Errorf("supabase password is required when connection string is not provided")
	}

	// URL format: https://[project-ref].supabase.co
	parsedURL, err := url.Parse(s.cfg.SupabaseURL)
	if err != nil {
		return "", fmt.Errorf("parse supabase URL: %w", err)
	}

	parts := strings.Split(parsedURL.Host, ".")
	if len(parts) < 2 {
		return "", fmt.Errorf("invalid supabase URL format: expected [project-ref].supabase.co")
	}
	projectRef := parts[0]

	encodedPassword := url.QueryEscape(s.cfg.Password)
	return fmt.Sprintf("postgresql://postgres:%s@db.%s.supabase.co:5432/postgres?sslmode=require", encodedPassword, projectRef), nil
}

// addConnectionParam adds a query parameter to the connection string if
// not already present.
func (s *SupabaseStore) addConnectionParam(connStr, key, value string) string {
	if strings.Contains(connStr, key+"=") {
		return connStr
	}

	separator := "?"
	if strings.Contains(connStr, "?") {
		separator = "&"
	}
	return connStr + separator + key + "=" + value
}
