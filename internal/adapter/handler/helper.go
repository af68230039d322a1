package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mockmind/mockmind-api/errors"
	"github.com/mockmind/mockmind-api/internal/domain/entities"
	"github.com/mockmind/mockmind-api/internal/usecase/interview"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
			Details: appErr.Details,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	// Non-AppError => internal server error
	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// mapSessionError translates domain sentinels from the interview use case
// into transport errors. Unrecognized errors pass through for HandleError to
// treat as internal.
func mapSessionError(sessionID string, err error) error {
	switch {
	case stdErrors.Is(err, entities.ErrSessionNotFound):
		return errors.ErrSessionNotFound(sessionID)
	case stdErrors.Is(err, entities.ErrSessionComplete):
		return errors.ErrSessionComplete(sessionID)
	case stdErrors.Is(err, entities.ErrAnswerInFlight):
		return errors.ErrAnswerInFlight(sessionID)
	case stdErrors.Is(err, entities.ErrInvalidSessionState):
		return errors.ErrSessionInvalidState(sessionID)
	case stdErrors.Is(err, entities.ErrEmptyAnswer):
		return errors.ErrMissingAnswer()
	case stdErrors.Is(err, entities.ErrEmptyQuestionBank):
		return errors.ErrInvalidArgument("Question bank must contain at least one question")
	case stdErrors.Is(err, interview.ErrEmptyJobPosting):
		return errors.ErrMissingJobPosting()
	default:
		return err
	}
}
