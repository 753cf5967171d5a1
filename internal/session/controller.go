package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/typetheme/internal/corpus"
	"github.com/verte-zerg/typetheme/internal/generator"
	"github.com/verte-zerg/typetheme/internal/model"
	"github.com/verte-zerg/typetheme/internal/scoring"
)

var (
	// ErrNotRunning is returned when submitting before any input was received.
	ErrNotRunning = errors.New("session is not running")
	// ErrEmptyInput is returned when submitting an empty buffer.
	ErrEmptyInput = errors.New("input is empty")
)

// Controller owns the active round and serializes every mutation.
type Controller struct {
	mu          sync.Mutex
	env         Env
	now         func() time.Time
	state       State
	subscribers []func(State)
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithIDs overrides the round identifier source.
func WithIDs(newID func() uuid.UUID) Option {
	return func(c *Controller) {
		c.env.NewID = newID
	}
}

// NewController starts a round on the given theme. Unknown themes fall back
// to the default theme.
func NewController(pool corpus.Pool, picker generator.Picker, theme model.Theme, opts ...Option) *Controller {
	c := &Controller{
		env: Env{Pool: pool, Picker: picker, NewID: uuid.New},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state = Reduce(c.env, State{}, SelectTheme{Theme: theme})
	return c
}

// State returns a snapshot of the active round.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Pool returns the sample pool the controller draws from.
func (c *Controller) Pool() corpus.Pool {
	return c.env.Pool
}

// Subscribe registers fn to be called with every new state.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// SelectTheme replaces the round with a fresh one for theme.
func (c *Controller) SelectTheme(theme model.Theme) State {
	return c.dispatch(SelectTheme{Theme: theme})
}

// Input records the current typed buffer.
func (c *Controller) Input(text string) State {
	return c.dispatch(Input{Text: text, At: c.now()})
}

// CanSubmit reports whether Submit would be accepted.
func (c *Controller) CanSubmit() bool {
	return c.State().CanSubmit()
}

// Submit scores the round. The caller should only offer submit when
// CanSubmit is true; otherwise an error describes the violated precondition.
func (c *Controller) Submit() (scoring.Result, error) {
	c.mu.Lock()
	switch {
	case !c.state.Running:
		c.mu.Unlock()
		return scoring.Result{}, ErrNotRunning
	case c.state.Input == "":
		c.mu.Unlock()
		return scoring.Result{}, ErrEmptyInput
	}
	s, subs := c.applyLocked(Submit{At: c.now()})
	c.mu.Unlock()
	notify(subs, s)
	return s.Result, nil
}

// ResetIfCurrent deals a new sample on the same theme when id still names the
// active, completed round. It reports whether a reset happened.
func (c *Controller) ResetIfCurrent(id uuid.UUID) bool {
	c.mu.Lock()
	if c.state.ID != id || !c.state.Completed {
		c.mu.Unlock()
		return false
	}
	s, subs := c.applyLocked(Reset{ID: id})
	c.mu.Unlock()
	notify(subs, s)
	return true
}

func (c *Controller) dispatch(ev Event) State {
	c.mu.Lock()
	s, subs := c.applyLocked(ev)
	c.mu.Unlock()
	notify(subs, s)
	return s
}

func (c *Controller) applyLocked(ev Event) (State, []func(State)) {
	c.state = Reduce(c.env, c.state, ev)
	return c.state, append([]func(State){}, c.subscribers...)
}

func notify(subs []func(State), s State) {
	for _, fn := range subs {
		fn(s)
	}
}
