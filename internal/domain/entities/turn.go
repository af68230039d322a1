package entities

import (
	"time"

	"github.com/google/uuid"
)

// Turn is one question/answer exchange. Turns are created when an answer has
// been transcribed and scored, and are immutable afterwards.
type Turn struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID        uuid.UUID      `json:"session_id" gorm:"type:uuid;not null;index"`
	Position         int            `json:"position" gorm:"type:integer;not null"`
	Question         string         `json:"question" gorm:"type:text;not null"`
	UserAnswer       string         `json:"user_answer" gorm:"type:text"`
	InterviewerReply string         `json:"interviewer_reply" gorm:"type:text"`
	Metrics          *SpeechMetrics `json:"metrics,omitempty" gorm:"type:jsonb;serializer:json"`
	AudioObjectKey   string         `json:"audio_object_key,omitempty" gorm:"type:varchar(512)"`
	CreatedAt        time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Turn) TableName() string {
	return "interview_turns"
}

// NewTurn creates a turn for the given session position
func NewTurn(sessionID uuid.UUID, position int, question, userAnswer, reply string, metrics *SpeechMetrics) *Turn {
	return &Turn{
		ID:               uuid.New(),
		SessionID:        sessionID,
		Position:         position,
		Question:         question,
		UserAnswer:       userAnswer,
		InterviewerReply: reply,
		Metrics:          metrics,
		CreatedAt:        time.Now(),
	}
}
