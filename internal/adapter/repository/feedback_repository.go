package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mockmind/mockmind-api/internal/domain/entities"
	"github.com/mockmind/mockmind-api/internal/domain/repositories"
)

// feedbackRepository implements the FeedbackRepository interface
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB) repositories.FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create persists a feedback report
func (r *feedbackRepository) Create(ctx context.Context, feedback *entities.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// FindBySessionID retrieves the feedback for a session
func (r *feedbackRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*entities.Feedback, error) {
	var feedback entities.Feedback
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&feedback).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrFeedbackNotFound
		}
		return nil, err
	}
	return &feedback, nil
}
