package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/piresc/pathclear/services/location/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestAppendHistory_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewHistoryRepository(db)

	now := time.Now().UTC()
	entry := &models.LocationHistoryEntry{
		ActorID:    "driver-1",
		Role:       models.RoleDriver,
		Latitude:   12.9716,
		Longitude:  77.5946,
		Speed:      ptr(30),
		CapturedAt: now,
		CreatedAt:  now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO location_history")).
		WithArgs("driver-1", models.RoleDriver, 12.9716, 77.5946, nil, nil, entry.Speed, nil, now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	require.NoError(t, repo.AppendHistory(context.Background(), entry))
	assert.Equal(t, int64(42), entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendHistory_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewHistoryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO location_history")).
		WillReturnError(errors.New("connection reset"))

	err := repo.AppendHistory(context.Background(), &models.LocationHistoryEntry{ActorID: "driver-1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to append location history")
}

func TestGetHistory_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewHistoryRepository(db)

	start := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	rows := sqlmock.NewRows([]string{"id", "actor_id", "role", "latitude", "longitude", "accuracy", "altitude", "speed", "bearing", "captured_at", "created_at"}).
		AddRow(1, "driver-1", "driver", 12.9706, 77.5936, nil, nil, nil, nil, start.Add(time.Minute), start.Add(time.Minute)).
		AddRow(2, "driver-1", "driver", 12.9716, 77.5946, 4.5, nil, 30.0, 45.0, start.Add(2*time.Minute), start.Add(2*time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, actor_id, role")).
		WithArgs("driver-1", start, end, 1000).
		WillReturnRows(rows)

	got, err := repo.GetHistory(context.Background(), "driver-1", start, end)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.RoleDriver, got[0].Role)
	assert.Nil(t, got[0].Accuracy)
	require.NotNil(t, got[1].Bearing)
	assert.Equal(t, 45.0, *got[1].Bearing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHistory_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewHistoryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, actor_id, role")).
		WillReturnError(errors.New("timeout"))

	_, err := repo.GetHistory(context.Background(), "driver-1", time.Now().Add(-time.Hour), time.Now())
	assert.Error(t, err)
}

func TestEnsureHistorySchema(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS location_history")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repository.EnsureHistorySchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
