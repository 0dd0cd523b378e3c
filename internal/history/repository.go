// Package history provides an optional review event log backed by SQLite.
// The log records every grading event for later inspection; card selection
// never reads it.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS reviews (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT NOT NULL,
    card_id TEXT NOT NULL,
    outcome TEXT NOT NULL,
    recorded_at TIMESTAMP NOT NULL
);
`

// Review represents one graded card within a study session.
type Review struct {
	ID         int64     `db:"id"`
	SessionID  string    `db:"session_id"`
	CardID     string    `db:"card_id"`
	Outcome    string    `db:"outcome"`
	RecordedAt time.Time `db:"recorded_at"`
}

// Repository defines operations for managing review events.
type Repository interface {
	Create(ctx context.Context, review *Review) error
	FindRecent(ctx context.Context, limit int) ([]Review, error)
}

// Open opens (or creates) the review database at the given path.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open(%s) > %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Exec(schema) > %w", err)
	}
	return db, nil
}

// DBRepository implements Repository using SQLite.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Create inserts a new review event.
func (r *DBRepository) Create(ctx context.Context, review *Review) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO reviews (session_id, card_id, outcome, recorded_at) VALUES (?, ?, ?, ?)",
		review.SessionID, review.CardID, review.Outcome, review.RecordedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert review) > %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	review.ID = id
	return nil
}

// FindRecent returns the most recent review events, newest first.
func (r *DBRepository) FindRecent(ctx context.Context, limit int) ([]Review, error) {
	var reviews []Review
	if err := r.db.SelectContext(ctx, &reviews,
		"SELECT * FROM reviews ORDER BY recorded_at DESC, id DESC LIMIT ?",
		limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(recent reviews) > %w", err)
	}
	return reviews, nil
}
