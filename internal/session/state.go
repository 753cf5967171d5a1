// Package session drives a typing round from theme selection to reset.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/typetheme/internal/corpus"
	"github.com/verte-zerg/typetheme/internal/generator"
	"github.com/verte-zerg/typetheme/internal/model"
	"github.com/verte-zerg/typetheme/internal/scoring"
)

// State is a snapshot of the active round.
type State struct {
	ID        uuid.UUID
	Theme     model.Theme
	Sample    string
	Input     string
	StartedAt time.Time
	Running   bool
	Completed bool
	Result    scoring.Result
	HasResult bool
}

// Started reports whether the round timer has been anchored.
func (s State) Started() bool {
	return !s.StartedAt.IsZero()
}

// CanSubmit reports whether a submit would be accepted.
func (s State) CanSubmit() bool {
	return s.Running && s.Input != ""
}

// Event mutates a State through Reduce.
type Event interface {
	isEvent()
}

// SelectTheme starts a fresh round for a theme.
type SelectTheme struct {
	Theme model.Theme
}

// Input replaces the typed buffer.
type Input struct {
	Text string
	At   time.Time
}

// Submit scores the typed buffer.
type Submit struct {
	At time.Time
}

// Reset starts a fresh round on the same theme if ID is still the active, completed round.
type Reset struct {
	ID uuid.UUID
}

func (SelectTheme) isEvent() {}
func (Input) isEvent()       {}
func (Submit) isEvent()      {}
func (Reset) isEvent()       {}

// Env carries the capabilities the reducer depends on.
type Env struct {
	Pool   corpus.Pool
	Picker generator.Picker
	NewID  func() uuid.UUID
}

// Reduce applies an event and returns the next state. Events that violate a
// precondition leave the state unchanged.
func Reduce(env Env, s State, ev Event) State {
	switch ev := ev.(type) {
	case SelectTheme:
		return fresh(env, ev.Theme)
	case Input:
		if s.Completed {
			return s
		}
		if !s.Started() {
			s.StartedAt = ev.At
			s.Running = true
		}
		s.Input = ev.Text
		return s
	case Submit:
		if !s.CanSubmit() {
			return s
		}
		s.Result = scoring.Score(s.Sample, s.Input, ev.At.Sub(s.StartedAt))
		s.HasResult = true
		s.Completed = true
		s.Running = false
		s.StartedAt = time.Time{}
		return s
	case Reset:
		if ev.ID != s.ID || !s.Completed {
			return s
		}
		return fresh(env, s.Theme)
	default:
		return s
	}
}

func fresh(env Env, theme model.Theme) State {
	newID := env.NewID
	if newID == nil {
		newID = uuid.New
	}
	if !env.Pool.Has(theme) {
		theme = fallbackTheme(env.Pool)
	}
	return State{
		ID:     newID(),
		Theme:  theme,
		Sample: env.Picker.Pick(env.Pool.Samples(theme)),
	}
}

func fallbackTheme(pool corpus.Pool) model.Theme {
	if pool.Has(model.DefaultTheme) {
		return model.DefaultTheme
	}
	themes := pool.Themes()
	if len(themes) == 0 {
		return model.DefaultTheme
	}
	return themes[0]
}

