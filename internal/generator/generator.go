// Package generator picks sample texts at random.
package generator

import (
	"math/rand"
	"time"
)

// Picker chooses one sample out of a non-empty list.
type Picker interface {
	Pick(samples []string) string
}

// Generator picks samples uniformly at random.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed, for reproducible picks.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick selects a sample uniformly. An empty list yields an empty string.
func (g *Generator) Pick(samples []string) string {
	if len(samples) == 0 {
		return ""
	}
	return samples[g.rnd.Intn(len(samples))]
}

// PickerFunc adapts a function to the Picker interface.
type PickerFunc func(samples []string) string

// Pick implements Picker.
func (f PickerFunc) Pick(samples []string) string {
	return f(samples)
}
