package speech

import (
	"fmt"

	"github.com/mockmind/mockmind-api/internal/domain/entities"
)

// FillerWordAdvice maps detected filler words to coaching text. Threshold
// ladder: more than 10 total, more than 5, otherwise.
func FillerWordAdvice(fillers []entities.FillerWordCount) string {
	if len(fillers) == 0 {
		return "Excellent! You avoided using filler words."
	}

	topFiller := fillers[0]
	total := 0
	for _, f := range fillers {
		total += f.Count
	}

	if total > 10 {
		return fmt.Sprintf("You used %d filler words. Try pausing instead of saying %q. Silence is powerful!", total, topFiller.Word)
	}
	if total > 5 {
		return fmt.Sprintf("Good effort! You used %d filler words. Be mindful of %q - replace it with brief pauses.", total, topFiller.Word)
	}
	return fmt.Sprintf("Great! Only %d filler words used. Keep reducing them for even more polished delivery.", total)
}

// PaceAdvice maps words-per-minute to coaching text. Thresholds: below 100,
// above 180, otherwise.
func PaceAdvice(wpm int) string {
	if wpm < 100 {
		return "You're speaking a bit slowly. Try to pick up the pace slightly to maintain engagement."
	}
	if wpm > 180 {
		return "You're speaking quite fast. Slow down a bit to ensure clarity and give yourself time to think."
	}
	return "Your speaking pace is excellent - natural and engaging."
}

// AnswerLengthAdvice maps answer duration to coaching text. Thresholds: below
// 30 seconds, above 180 seconds, otherwise.
func AnswerLengthAdvice(durationSeconds float64) string {
	if durationSeconds < minAnswerSeconds {
		return "Your answer was brief. Provide more detail and examples to fully address the question."
	}
	if durationSeconds > maxAnswerSeconds {
		return "Your answer was lengthy. Try to be more concise while still covering key points."
	}
	return "Great answer length - concise yet detailed."
}
