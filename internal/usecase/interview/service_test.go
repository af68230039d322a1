package interview

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mockmind/mockmind-api/internal/domain/entities"
	"github.com/mockmind/mockmind-api/pkg/ai"
)

// fakeSessionRepo keeps sessions in memory and mimics the optimistic state
// transition of the real store. appendErr fails AppendTurn until cleared;
// beforeTransition runs ahead of each TransitionState to stage races.
type fakeSessionRepo struct {
	sessions         map[uuid.UUID]*entities.InterviewSession
	turns            map[uuid.UUID][]entities.Turn
	appendErr        error
	beforeTransition func()
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: make(map[uuid.UUID]*entities.InterviewSession),
		turns:    make(map[uuid.UUID][]entities.Turn),
	}
}

func (r *fakeSessionRepo) Create(_ context.Context, s *entities.InterviewSession) error {
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.InterviewSession, error) {
	stored, ok := r.sessions[id]
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	cp := *stored
	cp.Turns = append([]entities.Turn(nil), r.turns[id]...)
	return &cp, nil
}

func (r *fakeSessionRepo) Update(_ context.Context, s *entities.InterviewSession) error {
	stored, ok := r.sessions[s.ID]
	if !ok {
		return entities.ErrSessionNotFound
	}
	cp := *s
	cp.Turns = nil
	*stored = cp
	return nil
}

func (r *fakeSessionRepo) TransitionState(_ context.Context, id uuid.UUID, from, to entities.SessionState) error {
	if r.beforeTransition != nil {
		r.beforeTransition()
	}
	stored, ok := r.sessions[id]
	if !ok {
		return entities.ErrSessionNotFound
	}
	if stored.State != from {
		return entities.ErrInvalidSessionState
	}
	stored.State = to
	return nil
}

func (r *fakeSessionRepo) AppendTurn(_ context.Context, s *entities.InterviewSession, turn *entities.Turn) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	if _, ok := r.sessions[s.ID]; !ok {
		return entities.ErrSessionNotFound
	}
	r.turns[s.ID] = append(r.turns[s.ID], *turn)
	cp := *s
	cp.Turns = nil
	*r.sessions[s.ID] = cp
	return nil
}

type fakeFeedbackRepo struct {
	bySession map[uuid.UUID]*entities.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{bySession: make(map[uuid.UUID]*entities.Feedback)}
}

func (r *fakeFeedbackRepo) Create(_ context.Context, f *entities.Feedback) error {
	r.bySession[f.SessionID] = f
	return nil
}

func (r *fakeFeedbackRepo) FindBySessionID(_ context.Context, sessionID uuid.UUID) (*entities.Feedback, error) {
	f, ok := r.bySession[sessionID]
	if !ok {
		return nil, entities.ErrFeedbackNotFound
	}
	return f, nil
}

type fakeHistoryRepo struct {
	summaries []*entities.SessionSummary
}

func (r *fakeHistoryRepo) Save(_ context.Context, s *entities.SessionSummary) error {
	r.summaries = append(r.summaries, s)
	return nil
}

func (r *fakeHistoryRepo) SetScore(_ context.Context, sessionID uuid.UUID, score int) error {
	for _, s := range r.summaries {
		if s.ID == sessionID {
			v := score
			s.Score = &v
			return nil
		}
	}
	return entities.ErrSessionNotFound
}

func (r *fakeHistoryRepo) List(_ context.Context, limit int) ([]*entities.SessionSummary, error) {
	if limit > 0 && len(r.summaries) > limit {
		return r.summaries[:limit], nil
	}
	return r.summaries, nil
}

// fakeChat replays scripted replies in order
type fakeChat struct {
	replies []string
	err     error
	calls   [][]ai.ChatMessage
}

func (c *fakeChat) Chat(_ context.Context, messages []ai.ChatMessage, _ ai.ChatOptions) (string, error) {
	c.calls = append(c.calls, messages)
	if c.err != nil {
		return "", c.err
	}
	if len(c.replies) == 0 {
		return "Got it. That makes sense.", nil
	}
	reply := c.replies[0]
	c.replies = c.replies[1:]
	return reply, nil
}

type fakeTranscriber struct {
	text     string
	duration float64
	err      error
}

func (t *fakeTranscriber) TranscribeFromURL(_ context.Context, _ string) (string, float64, error) {
	return t.text, t.duration, t.err
}

type fakeAudioStore struct {
	keys []string
	err  error
}

func (s *fakeAudioStore) UploadAudio(_ context.Context, objectKey string, _ []byte, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.keys = append(s.keys, objectKey)
	return "https://store.test/" + objectKey, nil
}

type serviceFixture struct {
	svc      *InterviewService
	sessions *fakeSessionRepo
	feedback *fakeFeedbackRepo
	history  *fakeHistoryRepo
	chat     *fakeChat
	stt      *fakeTranscriber
	store    *fakeAudioStore
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		sessions: newFakeSessionRepo(),
		feedback: newFakeFeedbackRepo(),
		history:  &fakeHistoryRepo{},
		chat:     &fakeChat{},
		stt:      &fakeTranscriber{},
		store:    &fakeAudioStore{},
	}
	f.svc = NewInterviewService(
		f.sessions, f.feedback, f.history,
		f.chat, f.stt, f.store,
		DefaultQuestionBanks(), 50, zap.NewNop(),
	)
	return f
}

func (f *serviceFixture) startedSession(t *testing.T, questions []string) *entities.InterviewSession {
	t.Helper()
	ctx := context.Background()
	session, err := f.svc.CreateSession(ctx, CreateSessionInput{
		InterviewType: entities.InterviewTypeTechnical,
		JobRole:       "Backend Engineer",
		JobLevel:      entities.JobLevelMid,
		Questions:     questions,
	})
	require.NoError(t, err)
	_, err = f.svc.Start(ctx, session.ID)
	require.NoError(t, err)
	return session
}

func TestInterviewLifecycle_TwoQuestions(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	questions := []string{"First question?", "Second question?"}

	session, err := f.svc.CreateSession(ctx, CreateSessionInput{
		JobRole:   "Backend Engineer",
		JobLevel:  entities.JobLevelMid,
		Questions: questions,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStateNotStarted, session.State)
	assert.Equal(t, 2, session.TotalQuestions())

	start, err := f.svc.Start(ctx, session.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, start.Utterance)
	assert.Equal(t, entities.SessionStateAwaitingAnswer, start.Session.State)

	// First answer advances to the second question
	out, err := f.svc.SubmitAnswer(ctx, session.ID, AnswerInput{
		Transcript:      "I would add an index and check the query plan.",
		DurationSeconds: 45,
	})
	require.NoError(t, err)
	assert.False(t, out.IsComplete)
	assert.Equal(t, 1, out.QuestionIndex)
	assert.Equal(t, "Second question?", out.NextQuestion)
	assert.Equal(t, "First question?", out.Turn.Question)
	require.NotNil(t, out.Turn.Metrics)
	assert.Empty(t, f.history.summaries)

	loaded, err := f.svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStateAwaitingAnswer, loaded.State)
	assert.Len(t, loaded.Turns, 1)

	// Second answer completes the session
	out, err = f.svc.SubmitAnswer(ctx, session.ID, AnswerInput{
		Transcript:      "I once debugged a deadlock in production.",
		DurationSeconds: 60,
	})
	require.NoError(t, err)
	assert.True(t, out.IsComplete)
	assert.Empty(t, out.NextQuestion)
	assert.Equal(t, 1, out.QuestionIndex)

	loaded, err = f.svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, loaded.IsComplete())
	assert.NotNil(t, loaded.CompletedAt)
	assert.Len(t, loaded.Turns, 2)

	require.Len(t, f.history.summaries, 1)
	assert.Equal(t, session.ID, f.history.summaries[0].ID)
	assert.Equal(t, 2, f.history.summaries[0].QuestionsAnswered)

	// No further answers accepted
	_, err = f.svc.SubmitAnswer(ctx, session.ID, AnswerInput{Transcript: "one more"})
	assert.ErrorIs(t, err, entities.ErrSessionComplete)
}

func TestSubmitAnswer_EmptyInput(t *testing.T) {
	f := newServiceFixture()
	session := f.startedSession(t, []string{"Only question?"})

	_, err := f.svc.SubmitAnswer(context.Background(), session.ID, AnswerInput{Transcript: "   "})
	assert.ErrorIs(t, err, entities.ErrEmptyAnswer)

	loaded, err := f.svc.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStateAwaitingAnswer, loaded.State)
}

func TestSubmitAnswer_NotStarted(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	session, err := f.svc.CreateSession(ctx, CreateSessionInput{Questions: []string{"Q?"}})
	require.NoError(t, err)

	_, err = f.svc.SubmitAnswer(ctx, session.ID, AnswerInput{Transcript: "answer"})
	assert.ErrorIs(t, err, entities.ErrInvalidSessionState)
}

func TestSubmitAnswer_InFlightGuard(t *testing.T) {
	f := newServiceFixture()
	session := f.startedSession(t, []string{"Q1?", "Q2?"})

	// Another answer is mid-processing
	f.sessions.sessions[session.ID].State = entities.SessionStateProcessing

	_, err := f.svc.SubmitAnswer(context.Background(), session.ID, AnswerInput{Transcript: "answer"})
	assert.ErrorIs(t, err, entities.ErrAnswerInFlight)
}

func TestSubmitAnswer_ChatFailureReverts(t *testing.T) {
	f := newServiceFixture()
	session := f.startedSession(t, []string{"Q1?", "Q2?"})
	f.chat.err = errors.New("upstream unavailable")

	_, err := f.svc.SubmitAnswer(context.Background(), session.ID, AnswerInput{
		Transcript:      "a perfectly good answer",
		DurationSeconds: 40,
	})
	require.Error(t, err)

	// Session is back in a stable state and the answer can be retried
	loaded, err := f.svc.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStateAwaitingAnswer, loaded.State)
	assert.Empty(t, loaded.Turns)

	f.chat.err = nil
	out, err := f.svc.SubmitAnswer(context.Background(), session.ID, AnswerInput{
		Transcript:      "a perfectly good answer",
		DurationSeconds: 40,
	})
	require.NoError(t, err)
	assert.False(t, out.IsComplete)
}

func TestSubmitAnswer_RecordFailureReverts(t *testing.T) {
	f := newServiceFixture()
	session := f.startedSession(t, []string{"Q1?", "Q2?"})
	f.sessions.appendErr = errors.New("connection refused")

	_, err := f.svc.SubmitAnswer(context.Background(), session.ID, AnswerInput{
		Transcript:      "a perfectly good answer",
		DurationSeconds: 40,
	})
	require.Error(t, err)

	// The session is back in a stable state, not stuck in Processing
	loaded, err := f.svc.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStateAwaitingAnswer, loaded.State)
	assert.Empty(t, loaded.Turns)

	// Once the store recovers the same answer goes through
	f.sessions.appendErr = nil
	out, err := f.svc.SubmitAnswer(context.Background(), session.ID, AnswerInput{
		Transcript:      "a perfectly good answer",
		DurationSeconds: 40,
	})
	require.NoError(t, err)
	assert.False(t, out.IsComplete)
	assert.Equal(t, "Q2?", out.NextQuestion)
}

func TestSubmitAnswer_AudioTranscription(t *testing.T) {
	f := newServiceFixture()
	session := f.startedSession(t, []string{"Q1?", "Q2?"})
	f.stt.text = "Transcribed from audio."
	f.stt.duration = 52.5

	out, err := f.svc.SubmitAnswer(context.Background(), session.ID, AnswerInput{
		Audio:            []byte("webm-bytes"),
		AudioContentType: "audio/webm",
	})
	require.NoError(t, err)
	assert.Equal(t, "Transcribed from audio.", out.Turn.UserAnswer)
	require.NotNil(t, out.Turn.Metrics)
	assert.Equal(t, 52.5, out.Turn.Metrics.DurationSeconds)
	assert.NotEmpty(t, out.Turn.AudioObjectKey)
	require.Len(t, f.store.keys, 1)
	assert.Equal(t, fmt.Sprintf("answers/%s/00.webm", session.ID), f.store.keys[0])
}

func TestSubmitAnswer_TranscriptionFailureReverts(t *testing.T) {
	f := newServiceFixture()
	session := f.startedSession(t, []string{"Q1?"})
	f.stt.err = errors.New("transcription job failed")

	_, err := f.svc.SubmitAnswer(context.Background(), session.ID, AnswerInput{
		Audio:            []byte("webm-bytes"),
		AudioContentType: "audio/webm",
	})
	require.Error(t, err)

	loaded, err := f.svc.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStateAwaitingAnswer, loaded.State)
}

func TestEndEarly(t *testing.T) {
	f := newServiceFixture()
	session := f.startedSession(t, []string{"Q1?", "Q2?", "Q3?"})
	ctx := context.Background()

	_, err := f.svc.SubmitAnswer(ctx, session.ID, AnswerInput{
		Transcript:      "one answer",
		DurationSeconds: 35,
	})
	require.NoError(t, err)

	ended, err := f.svc.EndEarly(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, ended.IsComplete())

	require.Len(t, f.history.summaries, 1)
	assert.Equal(t, 1, f.history.summaries[0].QuestionsAnswered)

	_, err = f.svc.EndEarly(ctx, session.ID)
	assert.ErrorIs(t, err, entities.ErrSessionComplete)
}

func TestEndEarly_LosesRaceToInFlightAnswer(t *testing.T) {
	f := newServiceFixture()
	session := f.startedSession(t, []string{"Q1?", "Q2?"})
	ctx := context.Background()

	// A concurrent submit claims Processing between the read and the end claim
	f.sessions.beforeTransition = func() {
		f.sessions.beforeTransition = nil
		f.sessions.sessions[session.ID].State = entities.SessionStateProcessing
	}

	_, err := f.svc.EndEarly(ctx, session.ID)
	assert.ErrorIs(t, err, entities.ErrAnswerInFlight)

	// The in-flight claim is untouched and no summary was recorded
	loaded, err := f.svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStateProcessing, loaded.State)
	assert.Empty(t, f.history.summaries)
}

func TestCreateSession_UsesBankForType(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	session, err := f.svc.CreateSession(ctx, CreateSessionInput{
		InterviewType: entities.InterviewTypeBehavioral,
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultQuestionBanks().Behavioral, session.Questions)
	assert.Equal(t, entities.JobLevelMid, session.JobLevel)

	session, err = f.svc.CreateSession(ctx, CreateSessionInput{})
	require.NoError(t, err)
	assert.Equal(t, DefaultQuestionBanks().Mixed, session.Questions)
	assert.Equal(t, entities.InterviewTypeMixed, session.InterviewType)
}

func TestGenerateQuestions(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	_, err := f.svc.GenerateQuestions(ctx, "  ")
	assert.ErrorIs(t, err, ErrEmptyJobPosting)

	f.chat.replies = []string{`{"role":"Platform Engineer","skills":["Kubernetes"],"questions":["Hi! Thanks for joining today. How are you doing?"]}`}
	gen, err := f.svc.GenerateQuestions(ctx, "We are hiring a platform engineer...")
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", gen.Role)

	// Unparseable reply falls back to the static mixed bank
	f.chat.replies = []string{"I cannot produce JSON today."}
	gen, err = f.svc.GenerateQuestions(ctx, "We are hiring a platform engineer...")
	require.NoError(t, err)
	assert.Equal(t, DefaultQuestionBanks().Mixed, gen.Questions)
}

func TestGenerateFeedback(t *testing.T) {
	f := newServiceFixture()
	session := f.startedSession(t, []string{"Q1?"})
	ctx := context.Background()

	// Incomplete session is rejected
	_, err := f.svc.GenerateFeedback(ctx, session.ID)
	assert.ErrorIs(t, err, entities.ErrInvalidSessionState)

	_, err = f.svc.SubmitAnswer(ctx, session.ID, AnswerInput{
		Transcript:      "My answer.",
		DurationSeconds: 40,
	})
	require.NoError(t, err)

	f.chat.replies = []string{`{"overallScore": 8, "interviewReadiness": "Ready to Apply", "communicationScore": 8, "technicalScore": 7, "strengths": ["Clear"], "suggestions": ["Keep practicing"]}`}
	feedback, err := f.svc.GenerateFeedback(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, feedback.OverallScore)
	assert.Equal(t, entities.FeedbackSourceModel, feedback.Source)

	// Score lands in the history record
	require.Len(t, f.history.summaries, 1)
	require.NotNil(t, f.history.summaries[0].Score)
	assert.Equal(t, 8, *f.history.summaries[0].Score)

	// Repeated calls return the stored report without another model call
	callsBefore := len(f.chat.calls)
	again, err := f.svc.GenerateFeedback(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, feedback.ID, again.ID)
	assert.Len(t, f.chat.calls, callsBefore)
}

func TestGenerateFeedback_FallbackOnUnparseableReply(t *testing.T) {
	f := newServiceFixture()
	session := f.startedSession(t, []string{"Q1?"})
	ctx := context.Background()

	_, err := f.svc.SubmitAnswer(ctx, session.ID, AnswerInput{
		Transcript:      "My answer.",
		DurationSeconds: 40,
	})
	require.NoError(t, err)

	f.chat.replies = []string{"The candidate did fine overall, I'd say."}
	feedback, err := f.svc.GenerateFeedback(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.FeedbackSourceFallback, feedback.Source)
	assert.Equal(t, 7, feedback.OverallScore)
	assert.Equal(t, "Need More Prep", feedback.InterviewReadiness)
	assert.Equal(t, 5, feedback.FillerWordCount)
}

func TestGenerateFeedback_NoTurns(t *testing.T) {
	f := newServiceFixture()
	session := f.startedSession(t, []string{"Q1?"})
	ctx := context.Background()

	_, err := f.svc.EndEarly(ctx, session.ID)
	require.NoError(t, err)

	_, err = f.svc.GenerateFeedback(ctx, session.ID)
	assert.ErrorIs(t, err, entities.ErrEmptyAnswer)
}

func TestHistory_RespectsLimit(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		session := f.startedSession(t, []string{"Q?"})
		_, err := f.svc.SubmitAnswer(ctx, session.ID, AnswerInput{
			Transcript:      "answer",
			DurationSeconds: 35,
		})
		require.NoError(t, err)
	}

	summaries, err := f.svc.History(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 3)
}
