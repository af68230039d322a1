package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/mockmind/mockmind-api/internal/domain/entities"
	"github.com/mockmind/mockmind-api/internal/domain/repositories"
	"github.com/mockmind/mockmind-api/internal/usecase/speech"
	"github.com/mockmind/mockmind-api/pkg/ai"
)

// ErrEmptyJobPosting is returned when question generation is requested
// without a job posting.
var ErrEmptyJobPosting = errors.New("job posting is required")

// Upstream failure kinds from answer processing. The transport layer matches
// on these to report which dependency failed.
var (
	ErrAudioStorage  = errors.New("audio storage failed")
	ErrTranscription = errors.New("transcription failed")
)

// InterviewService handles the interview session lifecycle
type InterviewService struct {
	sessionRepo  repositories.InterviewRepository
	feedbackRepo repositories.FeedbackRepository
	historyRepo  repositories.HistoryRepository
	chat         ChatClient
	transcriber  TranscriberClient
	audioStore   AudioStore
	banks        QuestionBanks
	historyLimit int
	logger       *zap.Logger
}

// NewInterviewService creates a new interview service
func NewInterviewService(
	sessionRepo repositories.InterviewRepository,
	feedbackRepo repositories.FeedbackRepository,
	historyRepo repositories.HistoryRepository,
	chat ChatClient,
	transcriber TranscriberClient,
	audioStore AudioStore,
	banks QuestionBanks,
	historyLimit int,
	logger *zap.Logger,
) *InterviewService {
	return &InterviewService{
		sessionRepo:  sessionRepo,
		feedbackRepo: feedbackRepo,
		historyRepo:  historyRepo,
		chat:         chat,
		transcriber:  transcriber,
		audioStore:   audioStore,
		banks:        banks,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// GenerateQuestions asks the model to turn a job posting into a tailored
// question set. An unreachable model is an error; an unparseable reply falls
// back to the static mixed bank so the candidate can still practice.
func (s *InterviewService) GenerateQuestions(ctx context.Context, jobPosting string) (*GeneratedQuestions, error) {
	if strings.TrimSpace(jobPosting) == "" {
		return nil, ErrEmptyJobPosting
	}

	raw, err := s.chat.Chat(ctx, []ai.ChatMessage{
		{Role: "system", Content: questionGenerationSystemPrompt},
		{Role: "user", Content: questionGenerationUserPrompt(jobPosting)},
	}, ai.ChatOptions{Temperature: 0.7, MaxTokens: 1500, JSONMode: true})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	gen, err := ParseGeneratedQuestions(raw)
	if err != nil {
		s.logger.Warn("unparseable question generation reply, using static bank",
			zap.Error(err))
		return &GeneratedQuestions{
			Role:      "Software Engineer",
			JobLevel:  string(entities.JobLevelMid),
			Questions: s.banks.Mixed,
		}, nil
	}
	return gen, nil
}

// CreateSession creates a session with a fixed question bank
func (s *InterviewService) CreateSession(ctx context.Context, input CreateSessionInput) (*entities.InterviewSession, error) {
	questions := input.Questions
	if len(questions) == 0 {
		questions = s.banks.ForType(input.InterviewType)
	}

	interviewType := input.InterviewType
	if interviewType == "" {
		interviewType = entities.InterviewTypeMixed
	}
	jobLevel := input.JobLevel
	if jobLevel == "" {
		jobLevel = entities.JobLevelMid
	}

	session, err := entities.NewInterviewSession(input.JobRole, jobLevel, interviewType, questions)
	if err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// Start asks the model to phrase the first question as speech and moves the
// session to AwaitingAnswer. The session stays NotStarted if the model call
// fails, so the client can retry.
func (s *InterviewService) Start(ctx context.Context, sessionID uuid.UUID) (*StartOutput, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != entities.SessionStateNotStarted {
		if session.IsComplete() {
			return nil, entities.ErrSessionComplete
		}
		return nil, entities.ErrInvalidSessionState
	}

	utterance, err := s.chat.Chat(ctx, []ai.ChatMessage{
		{Role: "system", Content: interviewerSystemPrompt(session)},
		{Role: "user", Content: firstQuestionUserPrompt(session.CurrentQuestion())},
	}, ai.ChatOptions{Temperature: 0.8, MaxTokens: 50})
	if err != nil {
		return nil, fmt.Errorf("phrase first question: %w", err)
	}

	if err := session.Begin(); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	return &StartOutput{Session: session, Utterance: utterance}, nil
}

// SubmitAnswer processes one answer. The session is atomically claimed into
// Processing before any external call; any failure after the claim reverts
// it to AwaitingAnswer so the candidate can retry.
func (s *InterviewService) SubmitAnswer(ctx context.Context, sessionID uuid.UUID, input AnswerInput) (*TurnOutput, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.State {
	case entities.SessionStateComplete:
		return nil, entities.ErrSessionComplete
	case entities.SessionStateProcessing:
		return nil, entities.ErrAnswerInFlight
	case entities.SessionStateNotStarted:
		return nil, entities.ErrInvalidSessionState
	}

	if len(input.Audio) == 0 && strings.TrimSpace(input.Transcript) == "" {
		return nil, entities.ErrEmptyAnswer
	}

	// Claim the transition. Loses the race to a concurrent submit for the
	// same session.
	if err := s.sessionRepo.TransitionState(ctx, session.ID,
		entities.SessionStateAwaitingAnswer, entities.SessionStateProcessing); err != nil {
		return nil, entities.ErrAnswerInFlight
	}
	session.State = entities.SessionStateProcessing

	revert := func() {
		if rerr := s.sessionRepo.TransitionState(ctx, session.ID,
			entities.SessionStateProcessing, entities.SessionStateAwaitingAnswer); rerr != nil {
			s.logger.Error("failed to revert session after processing error",
				zap.String("session_id", session.ID.String()),
				zap.Error(rerr))
		}
	}

	transcript := input.Transcript
	duration := input.DurationSeconds
	audioKey := ""

	if len(input.Audio) > 0 {
		key := fmt.Sprintf("answers/%s/%02d%s", session.ID, session.CurrentIndex, audioExtension(input.AudioContentType))
		audioURL, err := s.audioStore.UploadAudio(ctx, key, input.Audio, input.AudioContentType)
		if err != nil {
			revert()
			return nil, fmt.Errorf("%w: %w", ErrAudioStorage, err)
		}
		audioKey = key

		text, measured, err := s.transcriber.TranscribeFromURL(ctx, audioURL)
		if err != nil {
			revert()
			return nil, fmt.Errorf("%w: %w", ErrTranscription, err)
		}
		transcript = text
		if measured > 0 {
			duration = measured
		}
	}

	metrics := speech.Analyze(transcript, duration)

	reply, err := s.chat.Chat(ctx, s.turnMessages(session, transcript), ai.ChatOptions{
		Temperature: 0.9,
		MaxTokens:   50,
	})
	if err != nil {
		revert()
		return nil, fmt.Errorf("interviewer reply: %w", err)
	}

	turn := entities.NewTurn(session.ID, len(session.Turns), session.CurrentQuestion(), transcript, reply, metrics)
	turn.AudioObjectKey = audioKey

	isComplete, err := session.FinishTurn()
	if err != nil {
		revert()
		return nil, err
	}
	if err := s.sessionRepo.AppendTurn(ctx, session, turn); err != nil {
		// The row is still Processing, so the revert transition succeeds and
		// the candidate can resubmit.
		revert()
		return nil, fmt.Errorf("record turn: %w", err)
	}
	session.Turns = append(session.Turns, *turn)

	if isComplete {
		if herr := s.historyRepo.Save(ctx, entities.NewSessionSummary(session)); herr != nil {
			s.logger.Error("failed to record session history",
				zap.String("session_id", session.ID.String()),
				zap.Error(herr))
		}
	}

	out := &TurnOutput{
		Turn:           turn,
		QuestionIndex:  session.CurrentIndex,
		TotalQuestions: session.TotalQuestions(),
		IsComplete:     isComplete,
	}
	if !isComplete {
		out.NextQuestion = session.CurrentQuestion()
	}
	return out, nil
}

// EndEarly terminates the session before all questions are answered. The
// transition is claimed the same way SubmitAnswer claims Processing, so an
// end request racing an in-flight answer cannot overwrite its claim.
func (s *InterviewService) EndEarly(ctx context.Context, sessionID uuid.UUID) (*entities.InterviewSession, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsComplete() {
		return nil, entities.ErrSessionComplete
	}
	if err := session.EndEarly(); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.TransitionState(ctx, session.ID,
		entities.SessionStateAwaitingAnswer, entities.SessionStateComplete); err != nil {
		return nil, entities.ErrAnswerInFlight
	}
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("end session: %w", err)
	}

	if herr := s.historyRepo.Save(ctx, entities.NewSessionSummary(session)); herr != nil {
		s.logger.Error("failed to record session history",
			zap.String("session_id", session.ID.String()),
			zap.Error(herr))
	}
	return session, nil
}

// GetSession retrieves a session with its turns
func (s *InterviewService) GetSession(ctx context.Context, sessionID uuid.UUID) (*entities.InterviewSession, error) {
	return s.sessionRepo.FindByID(ctx, sessionID)
}

// GenerateFeedback produces the coaching report for a completed session.
// Repeated calls return the stored report. An unreachable model is an error;
// an unparseable reply is replaced with a canned report marked as fallback.
func (s *InterviewService) GenerateFeedback(ctx context.Context, sessionID uuid.UUID) (*entities.Feedback, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsComplete() {
		return nil, entities.ErrInvalidSessionState
	}
	if len(session.Turns) == 0 {
		return nil, entities.ErrEmptyAnswer
	}

	if existing, err := s.feedbackRepo.FindBySessionID(ctx, sessionID); err == nil {
		return existing, nil
	} else if !errors.Is(err, entities.ErrFeedbackNotFound) {
		return nil, err
	}

	raw, err := s.chat.Chat(ctx, []ai.ChatMessage{
		{Role: "system", Content: feedbackSystemPrompt(session.InterviewType, session.JobLevel)},
		{Role: "user", Content: feedbackUserPrompt(session)},
	}, ai.ChatOptions{Temperature: 0.7, MaxTokens: 1500})
	if err != nil {
		return nil, fmt.Errorf("generate feedback: %w", err)
	}

	source := entities.FeedbackSourceModel
	report, perr := ParseFeedbackReport(raw)
	if perr != nil {
		s.logger.Warn("unparseable feedback reply, using canned report",
			zap.String("session_id", session.ID.String()),
			zap.Error(perr))
		report = FallbackFeedbackReport()
		source = entities.FeedbackSourceFallback
	}

	feedback := buildFeedback(session.ID, report, source, raw)
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("store feedback: %w", err)
	}

	if herr := s.historyRepo.SetScore(ctx, session.ID, feedback.OverallScore); herr != nil {
		s.logger.Error("failed to record feedback score in history",
			zap.String("session_id", session.ID.String()),
			zap.Error(herr))
	}
	return feedback, nil
}

// History lists completed-session summaries, newest first
func (s *InterviewService) History(ctx context.Context) ([]*entities.SessionSummary, error) {
	return s.historyRepo.List(ctx, s.historyLimit)
}

// turnMessages builds the chat transcript for the interviewer reply: the
// system prompt, each prior exchange, then the latest answer.
func (s *InterviewService) turnMessages(session *entities.InterviewSession, transcript string) []ai.ChatMessage {
	messages := make([]ai.ChatMessage, 0, 2*len(session.Turns)+2)
	messages = append(messages, ai.ChatMessage{Role: "system", Content: interviewerSystemPrompt(session)})
	for _, t := range session.Turns {
		messages = append(messages,
			ai.ChatMessage{Role: "assistant", Content: t.Question},
			ai.ChatMessage{Role: "user", Content: t.UserAnswer},
		)
	}
	return append(messages, ai.ChatMessage{Role: "user", Content: transcript})
}

func buildFeedback(sessionID uuid.UUID, report *FeedbackReport, source entities.FeedbackSource, raw string) *entities.Feedback {
	quality := make([]entities.AnswerQuality, 0, len(report.AnswerQualityByQuestion))
	for _, q := range report.AnswerQualityByQuestion {
		quality = append(quality, entities.AnswerQuality{
			QuestionNumber: q.QuestionNumber,
			Quality:        int(q.Quality),
			Feedback:       q.Feedback,
		})
	}

	feedback := &entities.Feedback{
		ID:                 uuid.New(),
		SessionID:          sessionID,
		OverallScore:       int(report.OverallScore),
		InterviewReadiness: report.InterviewReadiness,
		Strengths:          report.Strengths,
		Weaknesses:         report.Weaknesses,
		FillerWordCount:    report.FillerWords.Count,
		FillerWordExamples: report.FillerWords.Examples,
		CommunicationScore: int(report.CommunicationScore),
		TechnicalScore:     int(report.TechnicalScore),
		Suggestions:        report.Suggestions,
		AnswerQuality:      quality,
		Source:             source,
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &payload); err == nil {
		feedback.RawResponse = datatypes.NewJSONType(payload)
	}
	return feedback
}

func audioExtension(contentType string) string {
	switch contentType {
	case "audio/wav", "audio/x-wav":
		return ".wav"
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/ogg":
		return ".ogg"
	case "audio/mp4", "audio/m4a":
		return ".m4a"
	default:
		return ".webm"
	}
}
