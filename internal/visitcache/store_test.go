package visitcache

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitswitch/internal/db"
)

func setupStore(t *testing.T) *Store {
	t.Helper()

	database, err := db.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database))

	return NewStore(database)
}

func TestGet_NoRecord(t *testing.T) {
	store := setupStore(t)

	rec, err := store.Get(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestPutThenGet(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	completed := time.Date(2024, 5, 1, 10, 30, 0, 0, time.Local)
	visit := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

	err := store.Put(ctx, Record{
		UserID:      1,
		GymID:       10,
		CompletedAt: completed,
		VisitDate:   visit,
		Status:      StatusCompleted,
	})
	require.NoError(t, err)

	rec, err := store.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, int64(1), rec.UserID)
	assert.Equal(t, int64(10), rec.GymID)
	assert.Equal(t, completed.Unix(), rec.CompletedAt.Unix())
	assert.Equal(t, visit.Unix(), rec.VisitDate.Unix())
	assert.Equal(t, StatusCompleted, rec.Status)
}

func TestPut_OverwritesSlot(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	day1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)
	day2 := time.Date(2024, 5, 2, 18, 0, 0, 0, time.Local)

	require.NoError(t, store.Put(ctx, Record{UserID: 1, GymID: 10, CompletedAt: day1, VisitDate: day1, Status: StatusCompleted}))
	require.NoError(t, store.Put(ctx, Record{UserID: 1, GymID: 10, CompletedAt: day2, VisitDate: day2, Status: StatusCompleted}))

	rec, err := store.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, day2.Unix(), rec.VisitDate.Unix())
}

func TestGet_SeparateSlotsPerGymAndUser(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Put(ctx, Record{UserID: 1, GymID: 10, CompletedAt: now, VisitDate: now, Status: StatusCompleted}))

	rec, err := store.Get(ctx, 1, 11)
	require.NoError(t, err)
	assert.Nil(t, rec)

	rec, err = store.Get(ctx, 2, 10)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestGet_MalformedRecordReadsAsAbsent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		rec  Record
	}{
		{"wrong status", Record{UserID: 1, GymID: 10, CompletedAt: time.Now(), VisitDate: time.Now(), Status: "ACTIVE"}},
		{"zero visit date", Record{UserID: 1, GymID: 10, CompletedAt: time.Now(), VisitDate: time.Unix(0, 0), Status: StatusCompleted}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, tt.rec))

			rec, err := store.Get(ctx, 1, 10)
			require.NoError(t, err)
			assert.Nil(t, rec)
		})
	}
}

func TestGet_QueryErrorIsReturned(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	store := NewStore(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, gym_id, completed_at, visit_date, status")).
		WithArgs(int64(1), int64(10)).
		WillReturnError(errors.New("disk I/O error"))

	_, err = store.Get(context.Background(), 1, 10)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPut_ExecErrorIsReturned(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	store := NewStore(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO visit_records")).
		WillReturnError(errors.New("database is locked"))

	err = store.Put(context.Background(), Record{UserID: 1, GymID: 10, CompletedAt: time.Now(), VisitDate: time.Now(), Status: StatusCompleted})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
