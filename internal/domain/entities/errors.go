package entities

import "errors"

// Domain errors
var (
	// Session errors
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionComplete     = errors.New("session already complete")
	ErrInvalidSessionState = errors.New("invalid session state transition")
	ErrEmptyQuestionBank   = errors.New("question bank must contain at least one question")

	// Turn errors
	ErrAnswerInFlight = errors.New("another answer is already being processed")
	ErrEmptyAnswer    = errors.New("answer transcript and audio are both empty")

	// Feedback errors
	ErrFeedbackNotFound = errors.New("feedback not found")
)
