package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Outcome values stored in the review log.
const (
	OutcomeCorrect = "correct"
	OutcomeWrong   = "wrong"
)

// Logger appends review events for a single study session, tagging them
// with a shared session identifier.
type Logger struct {
	repository Repository
	sessionID  string
	now        func() time.Time
}

// NewLogger creates a logger with a fresh session ID.
func NewLogger(repository Repository) *Logger {
	return &Logger{
		repository: repository,
		sessionID:  uuid.NewString(),
		now:        time.Now,
	}
}

// SessionID returns the identifier shared by all events of this session.
func (l *Logger) SessionID() string {
	return l.sessionID
}

// RecordReview appends one grading event to the log.
func (l *Logger) RecordReview(ctx context.Context, cardID string, correct bool) error {
	outcome := OutcomeWrong
	if correct {
		outcome = OutcomeCorrect
	}
	return l.repository.Create(ctx, &Review{
		SessionID:  l.sessionID,
		CardID:     cardID,
		Outcome:    outcome,
		RecordedAt: l.now(),
	})
}
