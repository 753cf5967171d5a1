// Package scoring computes accuracy, WPM and feedback for a submitted attempt.
package scoring

import (
	"math"
	"strings"
	"time"
)

// Result is the outcome of scoring one attempt.
type Result struct {
	Accuracy       float64
	WPM            float64
	ElapsedSeconds float64
	WordCount      int
	Tier           Tier
}

// Feedback returns the symbol and message for the result tier.
func (r Result) Feedback() Feedback {
	return r.Tier.Feedback()
}

// Score computes the result for typed text against the sample. Typed text
// must be non-empty; an empty attempt scores zero accuracy.
func Score(sample, typed string, elapsed time.Duration) Result {
	acc := Accuracy(sample, typed)
	words := WordCount(sample)
	wpm := WPM(words, elapsed)
	return Result{
		Accuracy:       acc,
		WPM:            wpm,
		ElapsedSeconds: round2(float64(elapsed.Milliseconds()) / 1000),
		WordCount:      words,
		Tier:           Classify(sample, typed, acc, wpm),
	}
}

// Accuracy returns the percentage of typed runes that match the sample at the
// same position, relative to the typed length.
func Accuracy(sample, typed string) float64 {
	typedRunes := []rune(typed)
	if len(typedRunes) == 0 {
		return 0
	}
	sampleRunes := []rune(sample)
	matches := 0
	for i, r := range typedRunes {
		if i < len(sampleRunes) && sampleRunes[i] == r {
			matches++
		}
	}
	return round2(float64(matches) / float64(len(typedRunes)) * 100)
}

// WordCount splits on single spaces. Empty tokens from repeated, leading or
// trailing spaces are counted.
func WordCount(sample string) int {
	return len(strings.Split(sample, " "))
}

// WPM returns words per minute, or 0 when no time has elapsed.
func WPM(words int, elapsed time.Duration) float64 {
	minutes := float64(elapsed.Milliseconds()) / 1000 / 60
	if minutes <= 0 {
		return 0
	}
	return round2(float64(words) / minutes)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
