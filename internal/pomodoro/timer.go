package pomodoro

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/focushub/internal/state"
)

// Mode is the phase a session is in.
type Mode string

const (
	Focus Mode = "focus"
	Break Mode = "break"
)

// Other returns the phase that follows m.
func (m Mode) Other() Mode {
	if m == Focus {
		return Break
	}
	return Focus
}

// Label returns the display name for the mode.
func (m Mode) Label() string {
	if m == Break {
		return "Break"
	}
	return "Focus"
}

// Durations sets the length of each phase.
type Durations struct {
	Focus time.Duration
	Break time.Duration
}

// DefaultDurations returns the classic 25/5 split.
func DefaultDurations() Durations {
	return Durations{Focus: 25 * time.Minute, Break: 5 * time.Minute}
}

// State is the observable shape of a session timer.
type State struct {
	Mode             Mode
	SecondsRemaining int
	IsRunning        bool
}

// Clock formats the remaining time as MM:SS.
func (s State) Clock() string {
	return fmt.Sprintf("%02d:%02d", s.SecondsRemaining/60, s.SecondsRemaining%60)
}

// Option customises a Timer.
type Option func(*Timer)

// WithDurations overrides the phase lengths. Non-positive values keep the
// defaults.
func WithDurations(d Durations) Option {
	return func(t *Timer) {
		if d.Focus >= time.Second {
			t.durations.Focus = d.Focus
		}
		if d.Break >= time.Second {
			t.durations.Break = d.Break
		}
	}
}

// WithLogger sets the logger used for phase transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Timer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithSessionEnd registers a hook invoked after the countdown completes a
// phase on its own. It is not called for Reset or SetMode.
func WithSessionEnd(fn func(ended Mode, next State)) Option {
	return func(t *Timer) { t.onEnd = fn }
}

// Timer is the two-phase pomodoro state machine. All observers of one Timer
// share its single clock.
type Timer struct {
	store     *state.Store[State]
	driver    *Driver
	durations Durations
	logger    *slog.Logger
	onEnd     func(ended Mode, next State)
}

// NewTimer builds a paused Timer in Focus mode, ticked by driver.
func NewTimer(driver *Driver, opts ...Option) *Timer {
	t := &Timer{
		driver:    driver,
		durations: DefaultDurations(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.store = state.New(State{
		Mode:             Focus,
		SecondsRemaining: t.SecondsFor(Focus),
	})
	return t
}

// SecondsFor returns the full length of mode in whole seconds.
func (t *Timer) SecondsFor(mode Mode) int {
	if mode == Break {
		return int(t.durations.Break / time.Second)
	}
	return int(t.durations.Focus / time.Second)
}

// Snapshot returns the current timer state.
func (t *Timer) Snapshot() State {
	return t.store.Snapshot()
}

// Subscribe registers fn for change notifications.
func (t *Timer) Subscribe(fn func()) (unsubscribe func()) {
	return t.store.Subscribe(fn)
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
func (t *Timer) Progress() float64 {
	s := t.Snapshot()
	total := t.SecondsFor(s.Mode)
	if total <= 0 {
		return 0
	}
	return float64(total-s.SecondsRemaining) / float64(total)
}

// StartPause toggles between running and paused.
func (t *Timer) StartPause() {
	next := t.apply(func(s State) State {
		s.IsRunning = !s.IsRunning
		return s
	})
	t.logger.Debug("timer toggled", "mode", next.Mode, "running", next.IsRunning, "remaining", next.SecondsRemaining)
}

// Reset stops the session and refills the clock for the current mode.
func (t *Timer) Reset() {
	t.apply(func(s State) State {
		s.IsRunning = false
		s.SecondsRemaining = t.SecondsFor(s.Mode)
		return s
	})
}

// SetMode switches to mode, stopping the session and resetting the clock.
func (t *Timer) SetMode(mode Mode) {
	if mode != Focus && mode != Break {
		return
	}
	t.apply(func(State) State {
		return State{Mode: mode, SecondsRemaining: t.SecondsFor(mode)}
	})
}

// tick advances a running session by one second. When the last second
// elapses the mode flips, the clock refills and the session stops.
func (t *Timer) tick() {
	var ended Mode
	next := t.apply(func(s State) State {
		if !s.IsRunning {
			return s
		}
		if s.SecondsRemaining <= 1 {
			ended = s.Mode
			mode := s.Mode.Other()
			return State{Mode: mode, SecondsRemaining: t.SecondsFor(mode)}
		}
		s.SecondsRemaining--
		return s
	})
	if ended == "" {
		return
	}
	t.logger.Info("session ended", "ended", ended, "next", next.Mode)
	if t.onEnd != nil {
		t.onEnd(ended, next)
	}
}

func (t *Timer) apply(fn func(State) State) State {
	next := t.store.Update(fn)
	if t.driver != nil {
		t.driver.sync(t)
	}
	return next
}
