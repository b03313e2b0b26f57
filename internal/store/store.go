// Package store provides PostgreSQL persistence for benefit catalogs.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcus/benefits-finder/internal/types"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the benefits table if it does not exist yet.
// The full record lives in a JSONB column; id, name, category, and
// level are lifted out for browsing, and position preserves catalog
// order across a round trip.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS benefits (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			level TEXT NOT NULL,
			position INTEGER NOT NULL DEFAULT 0,
			record JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// UpsertBenefit inserts or replaces a single benefit record. position
// controls ListBenefits order so a seeded catalog keeps its file order.
func (s *Store) UpsertBenefit(ctx context.Context, benefit types.Benefit, position int) error {
	record, err := json.Marshal(benefit)
	if err != nil {
		return fmt.Errorf("failed to marshal benefit %s: %w", benefit.ID, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO benefits (id, name, category, level, position, record)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET name = $2, category = $3, level = $4, position = $5, record = $6, updated_at = NOW()`,
		benefit.ID, benefit.Name, string(benefit.Category), string(benefit.Level), position, record,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert benefit %s: %w", benefit.ID, err)
	}
	return nil
}

// SeedCatalog ensures the schema and upserts every benefit in order.
func (s *Store) SeedCatalog(ctx context.Context, benefits []types.Benefit) error {
	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}

	for i, benefit := range benefits {
		if err := s.UpsertBenefit(ctx, benefit, i); err != nil {
			return err
		}
	}
	return nil
}

// ListBenefits retrieves the stored catalog in seeded order.
func (s *Store) ListBenefits(ctx context.Context) ([]types.Benefit, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT record FROM benefits ORDER BY position ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefits: %w", err)
	}
	defer rows.Close()

	var benefits []types.Benefit
	for rows.Next() {
		var record []byte
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("failed to scan benefit: %w", err)
		}
		var benefit types.Benefit
		if err := json.Unmarshal(record, &benefit); err != nil {
			return nil, fmt.Errorf("failed to unmarshal benefit: %w", err)
		}
		benefits = append(benefits, benefit)
	}
	return benefits, nil
}

// GetBenefit retrieves a benefit by ID. Returns nil when absent.
func (s *Store) GetBenefit(ctx context.Context, id string) (*types.Benefit, error) {
	var record []byte
	err := s.pool.QueryRow(ctx,
		`SELECT record FROM benefits WHERE id = $1`, id,
	).Scan(&record)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get benefit %s: %w", id, err)
	}

	var benefit types.Benefit
	if err := json.Unmarshal(record, &benefit); err != nil {
		return nil, fmt.Errorf("failed to unmarshal benefit %s: %w", id, err)
	}
	return &benefit, nil
}

// CountBenefits returns the number of stored benefits.
func (s *Store) CountBenefits(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM benefits`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count benefits: %w", err)
	}
	return count, nil
}
