package errors

// ErrorCode identifies an application error category in API responses
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_FORBIDDEN        ErrorCode = 1004
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1005

	ErrorCode_SESSION_NOT_FOUND     ErrorCode = 2000
	ErrorCode_SESSION_COMPLETE      ErrorCode = 2001
	ErrorCode_SESSION_INVALID_STATE ErrorCode = 2002
	ErrorCode_ANSWER_IN_FLIGHT      ErrorCode = 2003
	ErrorCode_MISSING_JOB_POSTING   ErrorCode = 2004
	ErrorCode_MISSING_ANSWER        ErrorCode = 2005
	ErrorCode_INVALID_SESSION_TOKEN ErrorCode = 2006

	ErrorCode_QUESTION_GENERATION_FAILED ErrorCode = 3000
	ErrorCode_INTERVIEW_TURN_FAILED      ErrorCode = 3001
	ErrorCode_TRANSCRIPTION_FAILED       ErrorCode = 3002
	ErrorCode_SYNTHESIS_FAILED           ErrorCode = 3003
	ErrorCode_FEEDBACK_FAILED            ErrorCode = 3004
	ErrorCode_INVALID_VOICE              ErrorCode = 3005

	ErrorCode_DB_QUERY_FAILED ErrorCode = 4000
	ErrorCode_STORAGE_FAILED  ErrorCode = 4001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:             "ALREADY_EXISTS",
	ErrorCode_FORBIDDEN:                  "FORBIDDEN",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_SESSION_NOT_FOUND:          "SESSION_NOT_FOUND",
	ErrorCode_SESSION_COMPLETE:           "SESSION_COMPLETE",
	ErrorCode_SESSION_INVALID_STATE:      "SESSION_INVALID_STATE",
	ErrorCode_ANSWER_IN_FLIGHT:           "ANSWER_IN_FLIGHT",
	ErrorCode_MISSING_JOB_POSTING:        "MISSING_JOB_POSTING",
	ErrorCode_MISSING_ANSWER:             "MISSING_ANSWER",
	ErrorCode_INVALID_SESSION_TOKEN:      "INVALID_SESSION_TOKEN",
	ErrorCode_QUESTION_GENERATION_FAILED: "QUESTION_GENERATION_FAILED",
	ErrorCode_INTERVIEW_TURN_FAILED:      "INTERVIEW_TURN_FAILED",
	ErrorCode_TRANSCRIPTION_FAILED:       "TRANSCRIPTION_FAILED",
	ErrorCode_SYNTHESIS_FAILED:           "SYNTHESIS_FAILED",
	ErrorCode_FEEDBACK_FAILED:            "FEEDBACK_FAILED",
	ErrorCode_INVALID_VOICE:              "INVALID_VOICE",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
	ErrorCode_STORAGE_FAILED:             "STORAGE_FAILED",
}

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
