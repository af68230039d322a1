package entities

// AnswerLength classifies how long the candidate spoke for
type AnswerLength string

const (
	AnswerLengthTooShort AnswerLength = "too-short"
	AnswerLengthTooLong  AnswerLength = "too-long"
	AnswerLengthGood     AnswerLength = "good"
)

// FillerWordCount is one detected filler word with its occurrence count
type FillerWordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// SpeechMetrics is the per-turn quantitative assessment of a spoken answer.
// ConfidenceScore is always clamped to [0, 100]; FillerWords only contains
// words with at least one match, sorted by count descending.
type SpeechMetrics struct {
	DurationSeconds float64           `json:"duration_seconds"`
	WordCount       int               `json:"word_count"`
	WordsPerMinute  int               `json:"words_per_minute"`
	FillerWords     []FillerWordCount `json:"filler_words"`
	ConfidenceScore int               `json:"confidence_score"`
	AnswerLength    AnswerLength      `json:"answer_length"`
}

// TotalFillerWords sums the counts of all detected filler words
func (m *SpeechMetrics) TotalFillerWords() int {
	total := 0
	for _, f := range m.FillerWords {
		total += f.Count
	}
	return total
}
