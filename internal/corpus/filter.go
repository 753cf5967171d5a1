package corpus

import (
	"strings"
	"unicode"
)

// ValidSample reports whether text can be offered as a single-line sample.
func ValidSample(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	for _, r := range text {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
