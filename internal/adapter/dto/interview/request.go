package interview

// GenerateQuestionsRequest represents the request to tailor questions to a
// job posting
type GenerateQuestionsRequest struct {
	JobPosting string `json:"job_posting" validate:"required,min=1"`
}

// CreateSessionRequest represents the request to create a session. Questions
// is optional; when omitted the static bank for Type is used.
type CreateSessionRequest struct {
	Type      string   `json:"type" validate:"omitempty,oneof=technical behavioral mixed"`
	JobRole   string   `json:"job_role" validate:"omitempty,max=255"`
	JobLevel  string   `json:"job_level" validate:"omitempty,oneof=entry mid senior"`
	Questions []string `json:"questions,omitempty" validate:"omitempty,min=1,dive,min=1"`
}

// SubmitAnswerRequest represents one candidate answer. Either a transcript or
// an audio payload must be present; audio arrives as multipart form data and
// is handled separately.
type SubmitAnswerRequest struct {
	Transcript      string  `json:"transcript"`
	DurationSeconds float64 `json:"duration_seconds" validate:"omitempty,gte=0"`
}

// SynthesizeRequest represents a text-to-speech request
type SynthesizeRequest struct {
	Text  string  `json:"text" validate:"required,min=1"`
	Voice string  `json:"voice" validate:"omitempty,oneof=alloy echo fable onyx nova shimmer"`
	Speed float64 `json:"speed" validate:"omitempty,gte=0.25,lte=4"`
}
