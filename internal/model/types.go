// Package model defines shared data structures.
package model

import "time"

// Theme names a pool of sample texts.
type Theme string

// Built-in themes.
const (
	ThemeCoding     Theme = "coding"
	ThemeLiterature Theme = "literature"
	ThemeQuotes     Theme = "quotes"
	ThemeScience    Theme = "science"
)

// DefaultTheme is used when no valid theme was requested.
const DefaultTheme = ThemeCoding

// DefaultResetDelay is the pause between submitting and the result acknowledgment.
const DefaultResetDelay = 4 * time.Second

// Config defines practice settings.
type Config struct {
	Theme      Theme
	ResetDelay time.Duration
	Seed       int64
	UseStore   bool
}

// Sample is a stored corpus entry.
type Sample struct {
	ID        int64
	Theme     Theme
	Text      string
	CreatedAt time.Time
}
