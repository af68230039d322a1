package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mockmind/mockmind-api/internal/domain/entities"
	"github.com/mockmind/mockmind-api/internal/domain/repositories"
)

// historyRepository implements the HistoryRepository interface
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *gorm.DB) repositories.HistoryRepository {
	return &historyRepository{db: db}
}

// Save appends a completed-session summary
func (r *historyRepository) Save(ctx context.Context, summary *entities.SessionSummary) error {
	return r.db.WithContext(ctx).Create(summary).Error
}

// SetScore fills in the overall score after feedback generation
func (r *historyRepository) SetScore(ctx context.Context, sessionID uuid.UUID, score int) error {
	result := r.db.WithContext(ctx).
		Model(&entities.SessionSummary{}).
		Where("id = ?", sessionID).
		Update("score", score)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrSessionNotFound
	}
	return nil
}

// List retrieves summaries ordered newest first
func (r *historyRepository) List(ctx context.Context, limit int) ([]*entities.SessionSummary, error) {
	var summaries []*entities.SessionSummary
	query := r.db.WithContext(ctx).Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}
