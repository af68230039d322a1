package entities

import (
	"time"

	"github.com/google/uuid"
)

// SessionSummary is the append-only history record written when a session
// completes. ID matches the session it summarizes. Score is filled in later if
// feedback is generated.
type SessionSummary struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	JobRole           string    `json:"job_role" gorm:"type:varchar(255)"`
	JobLevel          JobLevel  `json:"job_level" gorm:"type:varchar(20)"`
	Timestamp         time.Time `json:"timestamp" gorm:"type:timestamp;not null;index"`
	DurationSeconds   int       `json:"duration_seconds" gorm:"type:integer"`
	QuestionsAnswered int       `json:"questions_answered" gorm:"type:integer"`
	Score             *int      `json:"score,omitempty" gorm:"type:integer"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (SessionSummary) TableName() string {
	return "session_summaries"
}

// NewSessionSummary builds the history record for a completed session
func NewSessionSummary(s *InterviewSession) *SessionSummary {
	ts := time.Now()
	if s.CompletedAt != nil {
		ts = *s.CompletedAt
	}
	return &SessionSummary{
		ID:                s.ID,
		JobRole:           s.JobRole,
		JobLevel:          s.JobLevel,
		Timestamp:         ts,
		DurationSeconds:   s.DurationSeconds(),
		QuestionsAnswered: s.QuestionsAnswered(),
		CreatedAt:         time.Now(),
	}
}
