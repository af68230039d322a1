package entities

import (
	"time"

	"github.com/google/uuid"
)

// SessionState represents the lifecycle state of an interview session
type SessionState string

const (
	SessionStateNotStarted     SessionState = "not_started"     // Created, first question not yet delivered
	SessionStateAwaitingAnswer SessionState = "awaiting_answer" // Question delivered, waiting for the candidate
	SessionStateProcessing     SessionState = "processing"      // Answer received, transcription/scoring/reply in flight
	SessionStateComplete       SessionState = "complete"        // Terminal; no further turns are accepted
)

// InterviewType selects a static question bank when no job posting is provided
type InterviewType string

const (
	InterviewTypeTechnical  InterviewType = "technical"
	InterviewTypeBehavioral InterviewType = "behavioral"
	InterviewTypeMixed      InterviewType = "mixed"
)

// JobLevel is the seniority the interviewer calibrates to
type JobLevel string

const (
	JobLevelEntry  JobLevel = "entry"
	JobLevelMid    JobLevel = "mid"
	JobLevelSenior JobLevel = "senior"
)

// InterviewSession is the aggregate for one mock interview. The question bank is
// fixed at creation time; CurrentIndex only ever moves forward and is capped at
// len(Questions)-1. Turns are append-only.
type InterviewSession struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	JobRole       string        `json:"job_role" gorm:"type:varchar(255)"`
	JobLevel      JobLevel      `json:"job_level" gorm:"type:varchar(20)"`
	InterviewType InterviewType `json:"interview_type" gorm:"type:varchar(20);not null;default:'mixed'"`
	Questions     []string      `json:"questions" gorm:"type:jsonb;serializer:json;not null"`
	CurrentIndex  int           `json:"current_index" gorm:"type:integer;not null;default:0"`
	State         SessionState  `json:"state" gorm:"type:varchar(20);not null;index;default:'not_started'"`
	StartedAt     time.Time     `json:"started_at" gorm:"type:timestamp;not null"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty" gorm:"type:timestamp"`

	Turns []Turn `json:"turns,omitempty" gorm:"foreignKey:SessionID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (InterviewSession) TableName() string {
	return "interview_sessions"
}

// NewInterviewSession creates a session with a fixed question bank.
// The bank must contain at least one question.
func NewInterviewSession(jobRole string, jobLevel JobLevel, interviewType InterviewType, questions []string) (*InterviewSession, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuestionBank
	}
	return &InterviewSession{
		ID:            uuid.New(),
		JobRole:       jobRole,
		JobLevel:      jobLevel,
		InterviewType: interviewType,
		Questions:     questions,
		CurrentIndex:  0,
		State:         SessionStateNotStarted,
		StartedAt:     time.Now(),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}, nil
}

// TotalQuestions returns the size of the question bank
func (s *InterviewSession) TotalQuestions() int {
	return len(s.Questions)
}

// CurrentQuestion returns the question at the current index
func (s *InterviewSession) CurrentQuestion() string {
	return s.Questions[s.CurrentIndex]
}

// NextQuestionIndex returns the index the session will move to after the
// current answer is processed, saturating at the last question.
func (s *InterviewSession) NextQuestionIndex() int {
	next := s.CurrentIndex + 1
	if next > len(s.Questions)-1 {
		next = len(s.Questions) - 1
	}
	return next
}

// Begin transitions NotStarted -> AwaitingAnswer once the first interviewer
// utterance has been obtained and delivered.
func (s *InterviewSession) Begin() error {
	if s.State != SessionStateNotStarted {
		return ErrInvalidSessionState
	}
	s.State = SessionStateAwaitingAnswer
	s.UpdatedAt = time.Now()
	return nil
}

// BeginProcessing transitions AwaitingAnswer -> Processing when an answer
// arrives. Returns ErrInvalidSessionState if another answer is already in
// flight or the session has completed.
func (s *InterviewSession) BeginProcessing() error {
	if s.State != SessionStateAwaitingAnswer {
		return ErrInvalidSessionState
	}
	s.State = SessionStateProcessing
	s.UpdatedAt = time.Now()
	return nil
}

// AbortProcessing returns the session to AwaitingAnswer after a failed
// transition, leaving it in its prior stable state so the candidate can retry.
func (s *InterviewSession) AbortProcessing() error {
	if s.State != SessionStateProcessing {
		return ErrInvalidSessionState
	}
	s.State = SessionStateAwaitingAnswer
	s.UpdatedAt = time.Now()
	return nil
}

// FinishTurn completes a Processing transition. If the answered question was
// the last one the session becomes Complete; otherwise the index advances and
// the session awaits the next answer. Reports whether the session completed.
func (s *InterviewSession) FinishTurn() (bool, error) {
	if s.State != SessionStateProcessing {
		return false, ErrInvalidSessionState
	}
	if s.CurrentIndex >= len(s.Questions)-1 {
		s.State = SessionStateComplete
		now := time.Now()
		s.CompletedAt = &now
		s.UpdatedAt = now
		return true, nil
	}
	s.CurrentIndex++
	s.State = SessionStateAwaitingAnswer
	s.UpdatedAt = time.Now()
	return false, nil
}

// EndEarly terminates the session from AwaitingAnswer, skipping the remaining
// questions. A session with fewer turns than questions is valid.
func (s *InterviewSession) EndEarly() error {
	if s.State != SessionStateAwaitingAnswer {
		return ErrInvalidSessionState
	}
	s.State = SessionStateComplete
	now := time.Now()
	s.CompletedAt = &now
	s.UpdatedAt = now
	return nil
}

// IsComplete reports whether the session reached its terminal state
func (s *InterviewSession) IsComplete() bool {
	return s.State == SessionStateComplete
}

// QuestionsAnswered counts the turns recorded so far
func (s *InterviewSession) QuestionsAnswered() int {
	return len(s.Turns)
}

// DurationSeconds returns the wall-clock length of the session
func (s *InterviewSession) DurationSeconds() int {
	end := time.Now()
	if s.CompletedAt != nil {
		end = *s.CompletedAt
	}
	return int(end.Sub(s.StartedAt).Seconds())
}
