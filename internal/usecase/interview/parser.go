package interview

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GeneratedQuestions is the structured output of question generation from a
// job posting.
type GeneratedQuestions struct {
	Role      string   `json:"role"`
	Company   string   `json:"company,omitempty"`
	JobLevel  string   `json:"jobLevel,omitempty"`
	Skills    []string `json:"skills"`
	Questions []string `json:"questions"`
}

// FillerWordSummary is the model's own estimate of filler word usage
type FillerWordSummary struct {
	Count    int      `json:"count"`
	Examples []string `json:"examples"`
}

// AnswerQualityItem rates one answered question in a feedback report
type AnswerQualityItem struct {
	QuestionNumber int     `json:"questionNumber"`
	Quality        float64 `json:"quality"`
	Feedback       string  `json:"feedback"`
}

// FeedbackReport is the structured coaching report produced after an
// interview. Scores are float64 because models occasionally return fractional
// values; they are rounded down on persistence.
type FeedbackReport struct {
	OverallScore            float64             `json:"overallScore"`
	InterviewReadiness      string              `json:"interviewReadiness"`
	Strengths               []string            `json:"strengths"`
	Weaknesses              []string            `json:"weaknesses"`
	FillerWords             FillerWordSummary   `json:"fillerWords"`
	CommunicationScore      float64             `json:"communicationScore"`
	TechnicalScore          float64             `json:"technicalScore"`
	Suggestions             []string            `json:"suggestions"`
	AnswerQualityByQuestion []AnswerQualityItem `json:"answerQualityByQuestion"`
}

// ParseGeneratedQuestions extracts a question set from a model reply. The
// reply is tried as-is first, then as the first JSON object embedded in
// surrounding prose.
func ParseGeneratedQuestions(raw string) (*GeneratedQuestions, error) {
	var gen GeneratedQuestions
	if err := parseTolerant(raw, &gen); err != nil {
		return nil, err
	}
	if len(gen.Questions) == 0 {
		return nil, fmt.Errorf("model reply contains no questions")
	}
	return &gen, nil
}

// ParseFeedbackReport extracts a feedback report from a model reply
func ParseFeedbackReport(raw string) (*FeedbackReport, error) {
	var report FeedbackReport
	if err := parseTolerant(raw, &report); err != nil {
		return nil, err
	}
	if report.OverallScore <= 0 {
		return nil, fmt.Errorf("model reply missing overall score")
	}
	return &report, nil
}

// FallbackFeedbackReport is the canned report used when the model reply
// cannot be parsed.
func FallbackFeedbackReport() *FeedbackReport {
	return &FeedbackReport{
		OverallScore:       7,
		InterviewReadiness: "Need More Prep",
		Strengths:          []string{"Clear communication", "Good structure"},
		Weaknesses:         []string{"Need more examples", "Speak with more confidence"},
		FillerWords: FillerWordSummary{
			Count:    5,
			Examples: []string{"um", "uh", "like"},
		},
		CommunicationScore: 7,
		TechnicalScore:     6,
		Suggestions: []string{
			"Practice speaking more concisely",
			"Prepare specific examples beforehand",
			"Reduce filler words by pausing instead",
		},
		AnswerQualityByQuestion: []AnswerQualityItem{},
	}
}

// parseTolerant unmarshals raw into v, first directly (after stripping any
// markdown code fences), then by locating the first balanced JSON object in
// the text.
func parseTolerant(raw string, v interface{}) error {
	cleaned := stripCodeFences(raw)
	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return nil
	}

	obj, ok := firstJSONObject(cleaned)
	if !ok {
		return fmt.Errorf("no JSON object found in model reply")
	}
	if err := json.Unmarshal([]byte(obj), v); err != nil {
		return fmt.Errorf("parse extracted JSON: %w", err)
	}
	return nil
}

// stripCodeFences removes a surrounding ```json ... ``` block if present
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// firstJSONObject scans for the first balanced {...} span, skipping braces
// inside string literals.
func firstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
