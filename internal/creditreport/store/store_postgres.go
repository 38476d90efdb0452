package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"creditguard/internal/creditreport/models"
	"creditguard/pkg/platform/sentinel"
)

// Schema creates the snapshot table. Every normalization is appended; reads
// return the newest unexpired snapshot per bureau.
const Schema = `
CREATE TABLE IF NOT EXISTS credit_profiles (
	id         BIGSERIAL PRIMARY KEY,
	user_id    TEXT        NOT NULL,
	bureau     TEXT        NOT NULL,
	profile    JSONB       NOT NULL,
	stored_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS credit_profiles_user_bureau_idx
	ON credit_profiles (user_id, bureau, stored_at DESC);
`

// PostgresStore persists profile snapshots in PostgreSQL.
type PostgresStore struct {
	db       *sql.DB
	cacheTTL time.Duration
}

// NewPostgresStore constructs a PostgreSQL-backed profile store.
func NewPostgresStore(db *sql.DB, cacheTTL time.Duration) *PostgresStore {
	return &PostgresStore{db: db, cacheTTL: cacheTTL}
}

// EnsureSchema creates the snapshot table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure credit_profiles schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, userID string, profile *models.CreditProfile) error {
	if profile == nil {
		return nil
	}
	body, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	query := `INSERT INTO credit_profiles (user_id, bureau, profile) VALUES ($1, $2, $3)`
	if _, err := s.db.ExecContext(ctx, query, userID, profile.Bureau.String(), body); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindLatest(ctx context.Context, userID string, bureau models.Bureau) (*models.CreditProfile, error) {
	query := `
		SELECT profile FROM credit_profiles
		WHERE user_id = $1 AND bureau = $2 AND stored_at > $3
		ORDER BY stored_at DESC, id DESC
		LIMIT 1`
	var body []byte
	err := s.db.QueryRowContext(ctx, query, userID, bureau.String(), s.cutoff()).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	var profile models.CreditProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &profile, nil
}

func (s *PostgresStore) ListLatest(ctx context.Context, userID string) ([]models.CreditProfile, error) {
	bureaus := make([]string, len(models.Bureaus))
	for i, b := range models.Bureaus {
		bureaus[i] = b.String()
	}
	query := `
		SELECT DISTINCT ON (bureau) bureau, profile FROM credit_profiles
		WHERE user_id = $1 AND bureau = ANY($2) AND stored_at > $3
		ORDER BY bureau, stored_at DESC, id DESC`
	rows, err := s.db.QueryContext(ctx, query, userID, pq.Array(bureaus), s.cutoff())
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	byBureau := make(map[models.Bureau]models.CreditProfile, len(bureaus))
	for rows.Next() {
		var bureau string
		var body []byte
		if err := rows.Scan(&bureau, &body); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		var profile models.CreditProfile
		if err := json.Unmarshal(body, &profile); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		byBureau[models.Bureau(bureau)] = profile
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	out := make([]models.CreditProfile, 0, len(byBureau))
	for _, b := range models.Bureaus {
		if p, ok := byBureau[b]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *PostgresStore) cutoff() time.Time {
	return time.Now().Add(-s.cacheTTL)
}
