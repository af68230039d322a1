package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/mockmind/mockmind-api/internal/domain/entities"
)

// InterviewRepository defines the interface for interview session data access
type InterviewRepository interface {
	// Create persists a new session
	Create(ctx context.Context, session *entities.InterviewSession) error

	// FindByID finds a session by ID with its turns ordered by position
	FindByID(ctx context.Context, id uuid.UUID) (*entities.InterviewSession, error)

	// Update saves session fields (state, index, completion timestamp)
	Update(ctx context.Context, session *entities.InterviewSession) error

	// TransitionState atomically moves a session from one state to another.
	// Returns entities.ErrInvalidSessionState if the session was not in the
	// expected source state, which serves as the single-transition-in-flight
	// guard.
	TransitionState(ctx context.Context, id uuid.UUID, from, to entities.SessionState) error

	// AppendTurn stores a new turn and the updated session in one transaction
	AppendTurn(ctx context.Context, session *entities.InterviewSession, turn *entities.Turn) error
}

// FeedbackRepository defines the interface for feedback data access
type FeedbackRepository interface {
	// Create persists a feedback report
	Create(ctx context.Context, feedback *entities.Feedback) error

	// FindBySessionID finds the feedback for a session
	FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*entities.Feedback, error)
}

// HistoryRepository defines the interface for the append-only session history
type HistoryRepository interface {
	// Save appends a completed-session summary
	Save(ctx context.Context, summary *entities.SessionSummary) error

	// SetScore fills in the overall score after feedback generation
	SetScore(ctx context.Context, sessionID uuid.UUID, score int) error

	// List returns summaries ordered newest first
	List(ctx context.Context, limit int) ([]*entities.SessionSummary, error)
}
