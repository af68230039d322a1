package interview

import (
	"testing"
)

func TestParseGeneratedQuestions_Direct(t *testing.T) {
	raw := `{"role":"Backend Engineer","company":"Acme","jobLevel":"senior","skills":["Go","Postgres"],"questions":["Hi! Thanks for joining today. How are you doing?","Tell me about yourself."]}`

	gen, err := ParseGeneratedQuestions(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if gen.Role != "Backend Engineer" {
		t.Errorf("role = %q", gen.Role)
	}
	if len(gen.Questions) != 2 {
		t.Errorf("questions = %d, want 2", len(gen.Questions))
	}
	if len(gen.Skills) != 2 {
		t.Errorf("skills = %d, want 2", len(gen.Skills))
	}
}

func TestParseGeneratedQuestions_CodeFence(t *testing.T) {
	raw := "```json\n{\"role\":\"SRE\",\"questions\":[\"Walk me through an incident you handled.\"]}\n```"

	gen, err := ParseGeneratedQuestions(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if gen.Role != "SRE" {
		t.Errorf("role = %q", gen.Role)
	}
}

func TestParseGeneratedQuestions_EmbeddedInProse(t *testing.T) {
	raw := `Sure! Here are the questions you asked for:

{"role":"Data Engineer","questions":["Describe a pipeline you built."],"skills":["Spark"]}

Let me know if you need more.`

	gen, err := ParseGeneratedQuestions(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if gen.Role != "Data Engineer" {
		t.Errorf("role = %q", gen.Role)
	}
}

func TestParseGeneratedQuestions_NoQuestions(t *testing.T) {
	if _, err := ParseGeneratedQuestions(`{"role":"Engineer","questions":[]}`); err == nil {
		t.Fatal("expected error for empty question list")
	}
}

func TestParseGeneratedQuestions_NoJSON(t *testing.T) {
	if _, err := ParseGeneratedQuestions("I'm sorry, I can't help with that."); err == nil {
		t.Fatal("expected error for reply without JSON")
	}
}

func TestParseFeedbackReport_Direct(t *testing.T) {
	raw := `{
		"overallScore": 8,
		"interviewReadiness": "Ready to Apply",
		"strengths": ["Specific examples", "Calm delivery"],
		"weaknesses": ["Rushed conclusions"],
		"fillerWords": {"count": 3, "examples": ["um"]},
		"communicationScore": 8,
		"technicalScore": 7,
		"suggestions": ["Pause before answering"],
		"answerQualityByQuestion": [
			{"questionNumber": 1, "quality": 8, "feedback": "Strong answer"}
		]
	}`

	report, err := ParseFeedbackReport(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if report.OverallScore != 8 {
		t.Errorf("overallScore = %v", report.OverallScore)
	}
	if report.FillerWords.Count != 3 {
		t.Errorf("fillerWords.count = %d", report.FillerWords.Count)
	}
	if len(report.AnswerQualityByQuestion) != 1 || report.AnswerQualityByQuestion[0].Quality != 8 {
		t.Errorf("answerQualityByQuestion = %+v", report.AnswerQualityByQuestion)
	}
}

func TestParseFeedbackReport_FractionalScores(t *testing.T) {
	raw := `{"overallScore": 7.5, "communicationScore": 8.2, "technicalScore": 6.9, "interviewReadiness": "Need More Prep"}`

	report, err := ParseFeedbackReport(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if report.OverallScore != 7.5 {
		t.Errorf("overallScore = %v, want 7.5", report.OverallScore)
	}
}

func TestParseFeedbackReport_BracesInsideStrings(t *testing.T) {
	raw := `Here is the report: {"overallScore": 6, "interviewReadiness": "Need More Prep", "strengths": ["Used map[string]{} correctly", "Knows { and } placement"]} done`

	report, err := ParseFeedbackReport(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(report.Strengths) != 2 {
		t.Errorf("strengths = %+v", report.Strengths)
	}
}

func TestParseFeedbackReport_MissingScore(t *testing.T) {
	if _, err := ParseFeedbackReport(`{"interviewReadiness": "Ready to Apply"}`); err == nil {
		t.Fatal("expected error for missing overall score")
	}
}

func TestFallbackFeedbackReport(t *testing.T) {
	report := FallbackFeedbackReport()
	if report.OverallScore != 7 {
		t.Errorf("overallScore = %v, want 7", report.OverallScore)
	}
	if report.InterviewReadiness != "Need More Prep" {
		t.Errorf("interviewReadiness = %q", report.InterviewReadiness)
	}
	if report.FillerWords.Count != 5 || len(report.FillerWords.Examples) != 3 {
		t.Errorf("fillerWords = %+v", report.FillerWords)
	}
	if len(report.Suggestions) != 3 {
		t.Errorf("suggestions = %d, want 3", len(report.Suggestions))
	}
	if report.AnswerQualityByQuestion == nil {
		t.Error("answerQualityByQuestion should be an empty slice, not nil")
	}
}

func TestFirstJSONObject_Unbalanced(t *testing.T) {
	if _, ok := firstJSONObject(`{"overallScore": 7`); ok {
		t.Fatal("expected no object for unbalanced braces")
	}
	if _, ok := firstJSONObject("no braces at all"); ok {
		t.Fatal("expected no object when none present")
	}
}
