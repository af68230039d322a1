package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mockmind/mockmind-api/errors"
	dto "github.com/mockmind/mockmind-api/internal/adapter/dto/interview"
	"github.com/mockmind/mockmind-api/internal/usecase/interview"
)

// Question handles question generation HTTP requests
type Question struct {
	service interview.Service
	logger  *zap.Logger
}

// NewQuestion creates a new question handler
func NewQuestion(service interview.Service, logger *zap.Logger) *Question {
	return &Question{
		service: service,
		logger:  logger,
	}
}

// Generate tailors interview questions to a job posting
// @Summary      Generate interview questions
// @Description  Extracts role details from a job posting and generates a conversational question set
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        request  body      interview.GenerateQuestionsRequest  true  "Job posting"
// @Success      200      {object}  interview.GenerateQuestionsResponse
// @Failure      400      {object}  map[string]interface{}  "Missing job posting"
// @Failure      502      {object}  map[string]interface{}  "Model call failed"
// @Router       /questions/generate [post]
func (h *Question) Generate(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.GenerateQuestionsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrMissingJobPosting())
	}

	gen, err := h.service.GenerateQuestions(ctx, req.JobPosting)
	if err != nil {
		mapped := mapSessionError("", err)
		if mapped == err {
			mapped = errors.ErrQuestionGenerationFailed(err)
		}
		return HandleError(h.logger, c, mapped)
	}

	return HandleSuccess(h.logger, c, dto.ToGenerateQuestionsResponse(gen))
}
