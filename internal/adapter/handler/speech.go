package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mockmind/mockmind-api/errors"
	dto "github.com/mockmind/mockmind-api/internal/adapter/dto/interview"
	"github.com/mockmind/mockmind-api/internal/usecase/voice"
	"github.com/mockmind/mockmind-api/pkg/ai"
)

// Speech handles text-to-speech HTTP requests
type Speech struct {
	service voice.Service
	logger  *zap.Logger
}

// NewSpeech creates a new speech handler
func NewSpeech(service voice.Service, logger *zap.Logger) *Speech {
	return &Speech{
		service: service,
		logger:  logger,
	}
}

// Synthesize converts interviewer text to speech
// @Summary      Synthesize speech
// @Description  Converts text to an mp3 data URL; repeated utterances are served from cache
// @Tags         Speech
// @Accept       json
// @Produce      json
// @Param        request  body      interview.SynthesizeRequest  true  "Text and voice parameters"
// @Success      200      {object}  interview.SpeechResponse
// @Failure      400      {object}  map[string]interface{}  "Missing text or invalid voice"
// @Failure      502      {object}  map[string]interface{}  "Synthesis failed"
// @Router       /speech/synthesize [post]
func (h *Speech) Synthesize(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SynthesizeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	if req.Voice != "" && !ai.IsValidVoice(req.Voice) {
		return HandleError(h.logger, c, errors.ErrInvalidVoice(req.Voice, ai.ValidVoices()))
	}

	result, err := h.service.Synthesize(ctx, voice.SynthesizeInput{
		Text:  req.Text,
		Voice: req.Voice,
		Speed: req.Speed,
	})
	if err != nil {
		if err == voice.ErrEmptyText {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("Text is required"))
		}
		return HandleError(h.logger, c, errors.ErrSynthesisFailed(err))
	}

	return HandleSuccess(h.logger, c, dto.SpeechResponse{
		Audio:           result.Audio,
		DurationSeconds: result.DurationSeconds,
	})
}
