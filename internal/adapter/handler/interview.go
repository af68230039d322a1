package handler

import (
	stdErrors "errors"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mockmind/mockmind-api/errors"
	dto "github.com/mockmind/mockmind-api/internal/adapter/dto/interview"
	"github.com/mockmind/mockmind-api/internal/domain/entities"
	"github.com/mockmind/mockmind-api/internal/usecase/interview"
	"github.com/mockmind/mockmind-api/pkg/token"
)

// maxAnswerAudioBytes caps one uploaded answer segment
const maxAnswerAudioBytes = 25 << 20

// Interview handles interview session HTTP requests
type Interview struct {
	service interview.Service
	tokens  *token.Manager
	logger  *zap.Logger
}

// NewInterview creates a new interview handler
func NewInterview(service interview.Service, tokens *token.Manager, logger *zap.Logger) *Interview {
	return &Interview{
		service: service,
		tokens:  tokens,
		logger:  logger,
	}
}

// Create creates an interview session
// @Summary      Create an interview session
// @Description  Creates a session with tailored questions or a static bank and returns its access token
// @Tags         Interviews
// @Accept       json
// @Produce      json
// @Param        request  body      interview.CreateSessionRequest  true  "Session parameters"
// @Success      200      {object}  interview.CreateSessionResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid payload"
// @Router       /interviews [post]
func (h *Interview) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	session, err := h.service.CreateSession(ctx, interview.CreateSessionInput{
		InterviewType: entities.InterviewType(req.Type),
		JobRole:       req.JobRole,
		JobLevel:      entities.JobLevel(req.JobLevel),
		Questions:     req.Questions,
	})
	if err != nil {
		return HandleError(h.logger, c, mapSessionError("", err))
	}

	sessionToken, err := h.tokens.GenerateSessionToken(session.ID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	return HandleSuccess(h.logger, c, dto.CreateSessionResponse{
		Session: dto.ToSessionResponse(session),
		Token:   sessionToken,
	})
}

// Start delivers the first interviewer utterance
// @Summary      Start an interview session
// @Description  Obtains the spoken phrasing of the first question and opens the session
// @Tags         Interviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID (UUID)"
// @Success      200  {object}  interview.StartResponse
// @Failure      409  {object}  map[string]interface{}  "Session already started or complete"
// @Router       /interviews/{id}/start [post]
func (h *Interview) Start(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID, err := h.sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.service.Start(ctx, sessionID)
	if err != nil {
		return HandleError(h.logger, c, mapSessionError(sessionID.String(), err))
	}

	return HandleSuccess(h.logger, c, dto.StartResponse{
		Question:       out.Session.CurrentQuestion(),
		AIResponse:     out.Utterance,
		QuestionIndex:  out.Session.CurrentIndex,
		TotalQuestions: out.Session.TotalQuestions(),
	})
}

// SubmitAnswer processes one candidate answer
// @Summary      Submit an answer
// @Description  Accepts answer audio (multipart field "audio") or a JSON transcript, transcribes and scores it, and returns the interviewer reply
// @Tags         Interviews
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID (UUID)"
// @Success      200  {object}  interview.AnswerResponse
// @Failure      400  {object}  map[string]interface{}  "No answer provided"
// @Failure      409  {object}  map[string]interface{}  "Another answer in flight or session complete"
// @Failure      502  {object}  map[string]interface{}  "Transcription or model call failed"
// @Router       /interviews/{id}/answers [post]
func (h *Interview) SubmitAnswer(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID, err := h.sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	input, err := h.answerInput(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.service.SubmitAnswer(ctx, sessionID, input)
	if err != nil {
		return HandleError(h.logger, c, wrapAnswerError(sessionID.String(), err))
	}

	return HandleSuccess(h.logger, c, dto.ToAnswerResponse(out))
}

// End terminates a session before all questions are answered
// @Summary      End an interview session early
// @Tags         Interviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID (UUID)"
// @Success      200  {object}  interview.SessionResponse
// @Failure      409  {object}  map[string]interface{}  "Session already complete or processing"
// @Router       /interviews/{id}/end [post]
func (h *Interview) End(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID, err := h.sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	session, err := h.service.EndEarly(ctx, sessionID)
	if err != nil {
		return HandleError(h.logger, c, mapSessionError(sessionID.String(), err))
	}

	return HandleSuccess(h.logger, c, dto.ToSessionResponse(session))
}

// Get retrieves a session with its turns
// @Summary      Get an interview session
// @Tags         Interviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID (UUID)"
// @Success      200  {object}  interview.SessionResponse
// @Failure      404  {object}  map[string]interface{}  "Session not found"
// @Router       /interviews/{id} [get]
func (h *Interview) Get(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID, err := h.sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	session, err := h.service.GetSession(ctx, sessionID)
	if err != nil {
		return HandleError(h.logger, c, mapSessionError(sessionID.String(), err))
	}

	return HandleSuccess(h.logger, c, dto.ToSessionResponse(session))
}

// Feedback generates or returns the coaching report for a completed session
// @Summary      Get interview feedback
// @Description  Produces the structured coaching report once the session is complete; repeated calls return the stored report
// @Tags         Interviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID (UUID)"
// @Success      200  {object}  interview.FeedbackResponse
// @Failure      409  {object}  map[string]interface{}  "Session not complete"
// @Failure      502  {object}  map[string]interface{}  "Model call failed"
// @Router       /interviews/{id}/feedback [post]
func (h *Interview) Feedback(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID, err := h.sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	feedback, err := h.service.GenerateFeedback(ctx, sessionID)
	if err != nil {
		mapped := mapSessionError(sessionID.String(), err)
		if mapped == err {
			mapped = errors.ErrFeedbackFailed(err)
		}
		return HandleError(h.logger, c, mapped)
	}

	return HandleSuccess(h.logger, c, dto.ToFeedbackResponse(feedback))
}

// sessionID parses the :id path parameter
func (h *Interview) sessionID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("Invalid session ID")
	}
	return id, nil
}

// answerInput reads the answer from either a multipart form with an audio
// file or a JSON body with a transcript.
func (h *Interview) answerInput(c echo.Context) (interview.AnswerInput, error) {
	var input interview.AnswerInput

	if file, err := c.FormFile("audio"); err == nil {
		if file.Size > maxAnswerAudioBytes {
			return input, errors.ErrInvalidArgument("Answer audio exceeds the size limit")
		}

		src, err := file.Open()
		if err != nil {
			return input, errors.ErrInternal(err)
		}
		defer src.Close()

		data, err := io.ReadAll(io.LimitReader(src, maxAnswerAudioBytes+1))
		if err != nil {
			return input, errors.ErrInternal(err)
		}
		if len(data) > maxAnswerAudioBytes {
			return input, errors.ErrInvalidArgument("Answer audio exceeds the size limit")
		}

		input.Audio = data
		input.AudioContentType = file.Header.Get("Content-Type")
		if v := c.FormValue("duration_seconds"); v != "" {
			if d, err := strconv.ParseFloat(v, 64); err == nil {
				input.DurationSeconds = d
			}
		}
		return input, nil
	}

	var req dto.SubmitAnswerRequest
	if err := c.Bind(&req); err != nil {
		return input, errors.ErrInvalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return input, errors.ErrInvalidArgument(err.Error())
	}

	input.Transcript = req.Transcript
	input.DurationSeconds = req.DurationSeconds
	return input, nil
}

// wrapAnswerError maps domain sentinels first, then classifies the remainder
// by which upstream dependency failed.
func wrapAnswerError(sessionID string, err error) error {
	mapped := mapSessionError(sessionID, err)
	if mapped != err {
		return mapped
	}
	switch {
	case stdErrors.Is(err, interview.ErrAudioStorage):
		return errors.ErrStorageFailed("upload answer audio", err)
	case stdErrors.Is(err, interview.ErrTranscription):
		return errors.ErrTranscriptionFailed(err)
	default:
		return errors.ErrInterviewTurnFailed(err)
	}
}
