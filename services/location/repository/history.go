package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/piresc/pathclear/services/location"
)

// historyQueryLimit caps the rows returned by a single history query
const historyQueryLimit = 1000

// HistorySchema creates the location history table when missing
const HistorySchema = `
CREATE TABLE IF NOT EXISTS location_history (
	id          BIGSERIAL PRIMARY KEY,
	actor_id    TEXT             NOT NULL,
	role        TEXT             NOT NULL,
	latitude    DOUBLE PRECISION NOT NULL,
	longitude   DOUBLE PRECISION NOT NULL,
	accuracy    DOUBLE PRECISION,
	altitude    DOUBLE PRECISION,
	speed       DOUBLE PRECISION,
	bearing     DOUBLE PRECISION,
	captured_at TIMESTAMPTZ      NOT NULL,
	created_at  TIMESTAMPTZ      NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_location_history_actor_captured
	ON location_history (actor_id, captured_at);
`

type historyRepo struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a Postgres backed location history log
func NewHistoryRepository(db *sqlx.DB) location.HistoryRepo {
	return &historyRepo{db: db}
}

// EnsureHistorySchema applies HistorySchema
func EnsureHistorySchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, HistorySchema); err != nil {
		return fmt.Errorf("failed to create location_history: %w", err)
	}
	return nil
}

// AppendHistory stores one applied fix
func (r *historyRepo) AppendHistory(ctx context.Context, entry *models.LocationHistoryEntry) error {
	query := `
		INSERT INTO location_history (actor_id, role, latitude, longitude, accuracy, altitude, speed, bearing, captured_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		entry.ActorID,
		entry.Role,
		entry.Latitude,
		entry.Longitude,
		entry.Accuracy,
		entry.Altitude,
		entry.Speed,
		entry.Bearing,
		entry.CapturedAt,
		entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to append location history: %w", err)
	}
	return nil
}

// GetHistory lists the fixes of an actor captured within [start, end], oldest first
func (r *historyRepo) GetHistory(ctx context.Context, actorID string, start, end time.Time) ([]models.LocationHistoryEntry, error) {
	query := `
		SELECT id, actor_id, role, latitude, longitude, accuracy, altitude, speed, bearing, captured_at, created_at
		FROM location_history
		WHERE actor_id = $1 AND captured_at BETWEEN $2 AND $3
		ORDER BY captured_at ASC
		LIMIT $4`

	entries := []models.LocationHistoryEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, actorID, start, end, historyQueryLimit); err != nil {
		return nil, fmt.Errorf("failed to get location history: %w", err)
	}
	return entries, nil
}
