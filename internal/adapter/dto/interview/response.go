package interview

import (
	"time"

	"github.com/mockmind/mockmind-api/internal/domain/entities"
	"github.com/mockmind/mockmind-api/internal/usecase/interview"
	"github.com/mockmind/mockmind-api/internal/usecase/speech"
)

// GenerateQuestionsResponse represents a tailored question set
type GenerateQuestionsResponse struct {
	Role      string   `json:"role"`
	Company   string   `json:"company,omitempty"`
	JobLevel  string   `json:"job_level,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	Questions []string `json:"questions"`
}

// FillerWordResponse is one detected filler word with its count
type FillerWordResponse struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// SpeechMetricsResponse represents the delivery analysis of one answer
type SpeechMetricsResponse struct {
	DurationSeconds float64              `json:"duration_seconds"`
	WordCount       int                  `json:"word_count"`
	WordsPerMinute  int                  `json:"words_per_minute"`
	FillerWords     []FillerWordResponse `json:"filler_words"`
	ConfidenceScore int                  `json:"confidence_score"`
	AnswerLength    string               `json:"answer_length"`
	FillerAdvice    string               `json:"filler_advice"`
	PaceAdvice      string               `json:"pace_advice"`
	LengthAdvice    string               `json:"length_advice"`
}

// TurnResponse represents one recorded question/answer exchange
type TurnResponse struct {
	Position         int                    `json:"position"`
	Question         string                 `json:"question"`
	UserAnswer       string                 `json:"user_answer"`
	InterviewerReply string                 `json:"interviewer_reply"`
	Metrics          *SpeechMetricsResponse `json:"metrics,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}

// SessionResponse represents an interview session
type SessionResponse struct {
	ID                string         `json:"id"`
	State             string         `json:"state"`
	Type              string         `json:"type"`
	JobRole           string         `json:"job_role,omitempty"`
	JobLevel          string         `json:"job_level"`
	CurrentIndex      int            `json:"current_index"`
	TotalQuestions    int            `json:"total_questions"`
	QuestionsAnswered int            `json:"questions_answered"`
	StartedAt         time.Time      `json:"started_at"`
	CompletedAt       *time.Time     `json:"completed_at,omitempty"`
	Turns             []TurnResponse `json:"turns,omitempty"`
}

// CreateSessionResponse represents a newly created session with its access
// token
type CreateSessionResponse struct {
	Session SessionResponse `json:"session"`
	Token   string          `json:"token"`
}

// StartResponse represents the opening of a session
type StartResponse struct {
	Question       string `json:"question"`
	AIResponse     string `json:"ai_response"`
	QuestionIndex  int    `json:"question_index"`
	TotalQuestions int    `json:"total_questions"`
}

// AnswerResponse represents the outcome of one processed answer
type AnswerResponse struct {
	AIResponse     string                 `json:"ai_response"`
	Metrics        *SpeechMetricsResponse `json:"metrics,omitempty"`
	NextQuestion   string                 `json:"next_question,omitempty"`
	QuestionIndex  int                    `json:"question_index"`
	TotalQuestions int                    `json:"total_questions"`
	IsComplete     bool                   `json:"is_complete"`
}

// AnswerQualityResponse rates one answered question
type AnswerQualityResponse struct {
	QuestionNumber int    `json:"question_number"`
	Quality        int    `json:"quality"`
	Feedback       string `json:"feedback"`
}

// FeedbackResponse represents the post-interview coaching report
type FeedbackResponse struct {
	SessionID               string                  `json:"session_id"`
	OverallScore            int                     `json:"overall_score"`
	InterviewReadiness      string                  `json:"interview_readiness"`
	Strengths               []string                `json:"strengths"`
	Weaknesses              []string                `json:"weaknesses"`
	FillerWordCount         int                     `json:"filler_word_count"`
	FillerWordExamples      []string                `json:"filler_word_examples"`
	CommunicationScore      int                     `json:"communication_score"`
	TechnicalScore          int                     `json:"technical_score"`
	Suggestions             []string                `json:"suggestions"`
	AnswerQualityByQuestion []AnswerQualityResponse `json:"answer_quality_by_question"`
	Source                  string                  `json:"source"`
	CreatedAt               time.Time               `json:"created_at"`
}

// HistoryItemResponse represents one completed-session summary
type HistoryItemResponse struct {
	ID                string    `json:"id"`
	JobRole           string    `json:"job_role,omitempty"`
	JobLevel          string    `json:"job_level"`
	Timestamp         time.Time `json:"timestamp"`
	DurationSeconds   int       `json:"duration_seconds"`
	QuestionsAnswered int       `json:"questions_answered"`
	Score             *int      `json:"score,omitempty"`
}

// SpeechResponse represents a synthesized utterance
type SpeechResponse struct {
	Audio           string  `json:"audio"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// ToGenerateQuestionsResponse converts generated questions to a response
func ToGenerateQuestionsResponse(gen *interview.GeneratedQuestions) *GenerateQuestionsResponse {
	return &GenerateQuestionsResponse{
		Role:      gen.Role,
		Company:   gen.Company,
		JobLevel:  gen.JobLevel,
		Skills:    gen.Skills,
		Questions: gen.Questions,
	}
}

// ToSpeechMetricsResponse converts speech metrics to a response with coaching
// advice attached
func ToSpeechMetricsResponse(m *entities.SpeechMetrics) *SpeechMetricsResponse {
	if m == nil {
		return nil
	}
	fillers := make([]FillerWordResponse, 0, len(m.FillerWords))
	for _, f := range m.FillerWords {
		fillers = append(fillers, FillerWordResponse{Word: f.Word, Count: f.Count})
	}
	return &SpeechMetricsResponse{
		DurationSeconds: m.DurationSeconds,
		WordCount:       m.WordCount,
		WordsPerMinute:  m.WordsPerMinute,
		FillerWords:     fillers,
		ConfidenceScore: m.ConfidenceScore,
		AnswerLength:    string(m.AnswerLength),
		FillerAdvice:    speech.FillerWordAdvice(m.FillerWords),
		PaceAdvice:      speech.PaceAdvice(m.WordsPerMinute),
		LengthAdvice:    speech.AnswerLengthAdvice(m.DurationSeconds),
	}
}

// ToTurnResponse converts a turn to a response
func ToTurnResponse(t *entities.Turn) TurnResponse {
	return TurnResponse{
		Position:         t.Position,
		Question:         t.Question,
		UserAnswer:       t.UserAnswer,
		InterviewerReply: t.InterviewerReply,
		Metrics:          ToSpeechMetricsResponse(t.Metrics),
		CreatedAt:        t.CreatedAt,
	}
}

// ToSessionResponse converts a session to a response
func ToSessionResponse(s *entities.InterviewSession) SessionResponse {
	turns := make([]TurnResponse, 0, len(s.Turns))
	for i := range s.Turns {
		turns = append(turns, ToTurnResponse(&s.Turns[i]))
	}
	return SessionResponse{
		ID:                s.ID.String(),
		State:             string(s.State),
		Type:              string(s.InterviewType),
		JobRole:           s.JobRole,
		JobLevel:          string(s.JobLevel),
		CurrentIndex:      s.CurrentIndex,
		TotalQuestions:    s.TotalQuestions(),
		QuestionsAnswered: s.QuestionsAnswered(),
		StartedAt:         s.StartedAt,
		CompletedAt:       s.CompletedAt,
		Turns:             turns,
	}
}

// ToAnswerResponse converts a turn outcome to a response
func ToAnswerResponse(out *interview.TurnOutput) *AnswerResponse {
	return &AnswerResponse{
		AIResponse:     out.Turn.InterviewerReply,
		Metrics:        ToSpeechMetricsResponse(out.Turn.Metrics),
		NextQuestion:   out.NextQuestion,
		QuestionIndex:  out.QuestionIndex,
		TotalQuestions: out.TotalQuestions,
		IsComplete:     out.IsComplete,
	}
}

// ToFeedbackResponse converts a feedback report to a response
func ToFeedbackResponse(f *entities.Feedback) *FeedbackResponse {
	quality := make([]AnswerQualityResponse, 0, len(f.AnswerQuality))
	for _, q := range f.AnswerQuality {
		quality = append(quality, AnswerQualityResponse{
			QuestionNumber: q.QuestionNumber,
			Quality:        q.Quality,
			Feedback:       q.Feedback,
		})
	}
	return &FeedbackResponse{
		SessionID:               f.SessionID.String(),
		OverallScore:            f.OverallScore,
		InterviewReadiness:      f.InterviewReadiness,
		Strengths:               f.Strengths,
		Weaknesses:              f.Weaknesses,
		FillerWordCount:         f.FillerWordCount,
		FillerWordExamples:      f.FillerWordExamples,
		CommunicationScore:      f.CommunicationScore,
		TechnicalScore:          f.TechnicalScore,
		Suggestions:             f.Suggestions,
		AnswerQualityByQuestion: quality,
		Source:                  string(f.Source),
		CreatedAt:               f.CreatedAt,
	}
}

// ToHistoryResponse converts summaries to responses
func ToHistoryResponse(summaries []*entities.SessionSummary) []HistoryItemResponse {
	items := make([]HistoryItemResponse, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, HistoryItemResponse{
			ID:                s.ID.String(),
			JobRole:           s.JobRole,
			JobLevel:          string(s.JobLevel),
			Timestamp:         s.Timestamp,
			DurationSeconds:   s.DurationSeconds,
			QuestionsAnswered: s.QuestionsAnswered,
			Score:             s.Score,
		})
	}
	return items
}
