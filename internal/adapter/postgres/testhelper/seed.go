package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAlbum inserts an album row with raw naive timestamps, bypassing the
// repository. takenAt may be empty to leave the taken range NULL.
// Returns the new album id.
func SeedAlbum(t *testing.T, pool *pgxpool.Pool, parentID *uuid.UUID, createdAt, takenAt string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	var taken *string
	if takenAt != "" {
		taken = &takenAt
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO albums (id, parent_id, title, min_taken_at, max_taken_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4, $5, $5)`,
		id, parentID, "Seeded "+uniqueSuffix(), taken, createdAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAlbum: %v", err)
	}

	return id
}

// RawTimestamp reads a timestamp column of a row as the naive text stored in it.
func RawTimestamp(t *testing.T, pool *pgxpool.Pool, table, column string, id uuid.UUID) *string {
	t.Helper()

	var raw *string
	err := pool.QueryRow(context.Background(),
		`SELECT to_char(`+column+`, 'YYYY-MM-DD HH24:MI:SS') FROM `+table+` WHERE id = $1`, id,
	).Scan(&raw)
	if err != nil {
		t.Fatalf("testhelper: RawTimestamp %s.%s: %v", table, column, err)
	}
	return raw
}
