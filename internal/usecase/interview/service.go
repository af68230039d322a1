package interview

import (
	"context"

	"github.com/google/uuid"
	"github.com/mockmind/mockmind-api/internal/domain/entities"
	"github.com/mockmind/mockmind-api/pkg/ai"
)

// ChatClient is the language model dependency
type ChatClient interface {
	Chat(ctx context.Context, messages []ai.ChatMessage, opts ai.ChatOptions) (string, error)
}

// TranscriberClient converts stored answer audio to text
type TranscriberClient interface {
	TranscribeFromURL(ctx context.Context, audioURL string) (string, float64, error)
}

// AudioStore persists answer recordings and returns a fetchable URL
type AudioStore interface {
	UploadAudio(ctx context.Context, objectKey string, data []byte, contentType string) (string, error)
}

// CreateSessionInput carries the parameters for a new session. When Questions
// is empty the static bank for InterviewType is used.
type CreateSessionInput struct {
	InterviewType entities.InterviewType
	JobRole       string
	JobLevel      entities.JobLevel
	Questions     []string
}

// StartOutput is the first interviewer utterance for a session
type StartOutput struct {
	Session *entities.InterviewSession
	// Utterance is the spoken phrasing of the first question
	Utterance string
}

// AnswerInput is one candidate answer. Either Transcript or Audio must be
// set; when Audio is present it is stored and transcribed, and the measured
// duration wins over DurationSeconds.
type AnswerInput struct {
	Transcript       string
	DurationSeconds  float64
	Audio            []byte
	AudioContentType string
}

// TurnOutput is the result of processing one answer
type TurnOutput struct {
	Turn           *entities.Turn
	NextQuestion   string
	QuestionIndex  int
	TotalQuestions int
	IsComplete     bool
}

// Service defines the interface for the interview use case
type Service interface {
	// GenerateQuestions builds a tailored question set from a job posting
	GenerateQuestions(ctx context.Context, jobPosting string) (*GeneratedQuestions, error)

	// CreateSession creates a session with a fixed question bank
	CreateSession(ctx context.Context, input CreateSessionInput) (*entities.InterviewSession, error)

	// Start obtains the first interviewer utterance and opens the session
	Start(ctx context.Context, sessionID uuid.UUID) (*StartOutput, error)

	// SubmitAnswer processes one answer: transcribe, score, reply, advance
	SubmitAnswer(ctx context.Context, sessionID uuid.UUID, input AnswerInput) (*TurnOutput, error)

	// EndEarly terminates the session before all questions are answered
	EndEarly(ctx context.Context, sessionID uuid.UUID) (*entities.InterviewSession, error)

	// GetSession retrieves a session with its turns
	GetSession(ctx context.Context, sessionID uuid.UUID) (*entities.InterviewSession, error)

	// GenerateFeedback produces (or returns the stored) coaching report
	GenerateFeedback(ctx context.Context, sessionID uuid.UUID) (*entities.Feedback, error)

	// History lists completed-session summaries, newest first
	History(ctx context.Context) ([]*entities.SessionSummary, error)
}

// Ensure InterviewService implements Service interface
var _ Service = (*InterviewService)(nil)
