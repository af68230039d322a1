package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mockmind/mockmind-api/internal/domain/entities"
	"github.com/mockmind/mockmind-api/internal/domain/repositories"
)

// interviewRepository implements the InterviewRepository interface
type interviewRepository struct {
	db *gorm.DB
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *gorm.DB) repositories.InterviewRepository {
	return &interviewRepository{db: db}
}

// Create creates a new session
func (r *interviewRepository) Create(ctx context.Context, session *entities.InterviewSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// FindByID retrieves a session with its turns ordered by position
func (r *interviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.InterviewSession, error) {
	var session entities.InterviewSession
	err := r.db.WithContext(ctx).
		Preload("Turns", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&session).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Update saves session fields
func (r *interviewRepository) Update(ctx context.Context, session *entities.InterviewSession) error {
	return r.db.WithContext(ctx).
		Omit("Turns").
		Save(session).Error
}

// TransitionState atomically moves a session between states. The conditional
// update is the concurrency guard: only one caller can win the from -> to
// transition.
func (r *interviewRepository) TransitionState(ctx context.Context, id uuid.UUID, from, to entities.SessionState) error {
	result := r.db.WithContext(ctx).
		Model(&entities.InterviewSession{}).
		Where("id = ? AND state = ?", id, from).
		Update("state", to)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrInvalidSessionState
	}
	return nil
}

// AppendTurn stores the turn and the advanced session in one transaction
func (r *interviewRepository) AppendTurn(ctx context.Context, session *entities.InterviewSession, turn *entities.Turn) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(turn).Error; err != nil {
			return err
		}
		return tx.Model(&entities.InterviewSession{}).
			Where("id = ?", session.ID).
			Updates(map[string]interface{}{
				"current_index": session.CurrentIndex,
				"state":         session.State,
				"completed_at":  session.CompletedAt,
				"updated_at":    session.UpdatedAt,
			}).Error
	})
}
