package visitcache

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// StatusCompleted is the only status a visit record can carry: records exist
// solely to remember a server-confirmed check-out.
const StatusCompleted = "COMPLETED"

// Record is the locally persisted fallback for "last completed visit",
// one slot per (user, gym). It bridges the read-after-write gap when the
// server session lookup is unavailable right after a check-out; server truth
// supersedes it whenever both exist.
type Record struct {
	UserID      int64     `json:"user_id"`
	GymID       int64     `json:"gym_id"`
	CompletedAt time.Time `json:"completed_at"`
	VisitDate   time.Time `json:"visit_date"`
	Status      string    `json:"status"`
}

type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

type visitRow struct {
	UserID      int64  `db:"user_id"`
	GymID       int64  `db:"gym_id"`
	CompletedAt int64  `db:"completed_at"`
	VisitDate   int64  `db:"visit_date"`
	Status      string `db:"status"`
}

// Get returns the visit record for (userID, gymID), or nil when there is
// none. A malformed row reads as absent: the verdict then falls open to
// "not visited today", which is the conservative state.
func (s *Store) Get(ctx context.Context, userID, gymID int64) (*Record, error) {
	query := `
		SELECT user_id, gym_id, completed_at, visit_date, status
		FROM visit_records
		WHERE user_id = ? AND gym_id = ?
	`

	var row visitRow
	err := s.db.GetContext(ctx, &row, query, userID, gymID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if row.Status != StatusCompleted || row.VisitDate <= 0 {
		return nil, nil
	}

	return &Record{
		UserID:      row.UserID,
		GymID:       row.GymID,
		CompletedAt: time.Unix(row.CompletedAt, 0),
		VisitDate:   time.Unix(row.VisitDate, 0),
		Status:      row.Status,
	}, nil
}

// Put upserts the record for its (user, gym) slot. The write is synchronous;
// when it returns the record survives a process restart.
func (s *Store) Put(ctx context.Context, rec Record) error {
	query := `
		INSERT INTO visit_records (user_id, gym_id, completed_at, visit_date, status)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, gym_id) DO UPDATE SET
			completed_at = excluded.completed_at,
			visit_date = excluded.visit_date,
			status = excluded.status
	`

	_, err := s.db.ExecContext(ctx, query,
		rec.UserID,
		rec.GymID,
		rec.CompletedAt.Unix(),
		rec.VisitDate.Unix(),
		rec.Status,
	)
	return err
}
