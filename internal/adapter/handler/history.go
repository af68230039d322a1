package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mockmind/mockmind-api/errors"
	dto "github.com/mockmind/mockmind-api/internal/adapter/dto/interview"
	"github.com/mockmind/mockmind-api/internal/usecase/interview"
)

// History handles session history HTTP requests
type History struct {
	service interview.Service
	logger  *zap.Logger
}

// NewHistory creates a new history handler
func NewHistory(service interview.Service, logger *zap.Logger) *History {
	return &History{
		service: service,
		logger:  logger,
	}
}

// List returns completed-session summaries, newest first
// @Summary      List interview history
// @Tags         History
// @Produce      json
// @Success      200  {array}  interview.HistoryItemResponse
// @Router       /history [get]
func (h *History) List(c echo.Context) error {
	ctx := c.Request().Context()

	summaries, err := h.service.History(ctx)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed(err))
	}

	return HandleSuccess(h.logger, c, dto.ToHistoryResponse(summaries))
}
