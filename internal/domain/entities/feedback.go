package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FeedbackSource records how the feedback was produced
type FeedbackSource string

const (
	FeedbackSourceModel    FeedbackSource = "model"    // Parsed from the language model reply
	FeedbackSourceFallback FeedbackSource = "fallback" // Canned default after an unparseable reply
)

// AnswerQuality rates a single answered question
type AnswerQuality struct {
	QuestionNumber int    `json:"question_number"`
	Quality        int    `json:"quality"`
	Feedback       string `json:"feedback"`
}

// Feedback is the structured post-interview report for one session
type Feedback struct {
	ID                 uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID          uuid.UUID       `json:"session_id" gorm:"type:uuid;not null;uniqueIndex"`
	OverallScore       int             `json:"overall_score" gorm:"type:integer;not null"`
	InterviewReadiness string          `json:"interview_readiness" gorm:"type:varchar(100)"`
	Strengths          []string        `json:"strengths" gorm:"type:jsonb;serializer:json"`
	Weaknesses         []string        `json:"weaknesses" gorm:"type:jsonb;serializer:json"`
	FillerWordCount    int             `json:"filler_word_count" gorm:"type:integer"`
	FillerWordExamples []string        `json:"filler_word_examples" gorm:"type:jsonb;serializer:json"`
	CommunicationScore int             `json:"communication_score" gorm:"type:integer"`
	TechnicalScore     int             `json:"technical_score" gorm:"type:integer"`
	Suggestions        []string        `json:"suggestions" gorm:"type:jsonb;serializer:json"`
	AnswerQuality      []AnswerQuality `json:"answer_quality" gorm:"type:jsonb;serializer:json"`
	Source             FeedbackSource  `json:"source" gorm:"type:varchar(20);not null;default:'model'"`

	// RawResponse keeps the original model payload for debugging
	RawResponse datatypes.JSONType[map[string]interface{}] `json:"raw_response,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Feedback) TableName() string {
	return "interview_feedback"
}
