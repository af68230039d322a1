// Package speech scores interview answer transcripts. Analyze is a pure
// function: identical inputs always produce identical metrics and no I/O is
// performed.
package speech

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/mockmind/mockmind-api/internal/domain/entities"
)

// fillerWords is the fixed reference vocabulary of hesitation markers.
// Detection order matters: ties in the sorted output keep this order.
var fillerWords = []string{
	"um",
	"uh",
	"like",
	"you know",
	"basically",
	"actually",
	"honestly",
	"literally",
	"so",
	"i mean",
	"kind of",
	"sort of",
	"well",
}

// Answer length thresholds in seconds and the pace band in words per minute.
const (
	minAnswerSeconds = 30
	maxAnswerSeconds = 180
	goodPaceLowWPM   = 120
	goodPaceHighWPM  = 160

	baselineConfidence   = 75
	fillerPenaltyPerWord = 2
	fillerPenaltyCap     = 20
	tooShortPenalty      = 15
	tooLongPenalty       = 10
	goodPaceBonus        = 5
)

var fillerPatterns = compileFillerPatterns()

func compileFillerPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(fillerWords))
	for i, w := range fillerWords {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return patterns
}

// Analyze computes SpeechMetrics for a transcript spoken over durationSeconds.
// Degenerate inputs never fail: an empty transcript yields zero counts, and a
// non-positive duration yields a words-per-minute of 0 (the division is
// guarded rather than left undefined).
func Analyze(transcript string, durationSeconds float64) *entities.SpeechMetrics {
	wordCount := len(strings.Fields(transcript))

	wordsPerMinute := 0
	if durationSeconds > 0 {
		wordsPerMinute = int(math.Round(float64(wordCount) / durationSeconds * 60))
	}

	fillers := make([]entities.FillerWordCount, 0)
	for i, pattern := range fillerPatterns {
		matches := pattern.FindAllStringIndex(transcript, -1)
		if len(matches) > 0 {
			fillers = append(fillers, entities.FillerWordCount{
				Word:  fillerWords[i],
				Count: len(matches),
			})
		}
	}
	// Stable sort keeps reference-list encounter order for equal counts.
	sort.SliceStable(fillers, func(a, b int) bool {
		return fillers[a].Count > fillers[b].Count
	})

	answerLength := entities.AnswerLengthGood
	if durationSeconds < minAnswerSeconds {
		answerLength = entities.AnswerLengthTooShort
	}
	if durationSeconds > maxAnswerSeconds {
		answerLength = entities.AnswerLengthTooLong
	}

	totalFillers := 0
	for _, f := range fillers {
		totalFillers += f.Count
	}

	confidence := baselineConfidence
	penalty := totalFillers * fillerPenaltyPerWord
	if penalty > fillerPenaltyCap {
		penalty = fillerPenaltyCap
	}
	confidence -= penalty

	switch answerLength {
	case entities.AnswerLengthTooShort:
		confidence -= tooShortPenalty
	case entities.AnswerLengthTooLong:
		confidence -= tooLongPenalty
	}

	if wordsPerMinute >= goodPaceLowWPM && wordsPerMinute <= goodPaceHighWPM {
		confidence += goodPaceBonus
	}

	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	return &entities.SpeechMetrics{
		DurationSeconds: durationSeconds,
		WordCount:       wordCount,
		WordsPerMinute:  wordsPerMinute,
		FillerWords:     fillers,
		ConfidenceScore: confidence,
		AnswerLength:    answerLength,
	}
}
