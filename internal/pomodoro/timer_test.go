package pomodoro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/focushub/internal/clock"
)

func newTestTimer(t *testing.T, opts ...Option) (*Timer, *Driver, *clock.Manual) {
	t.Helper()
	sched := clock.NewManual()
	driver := NewDriver(sched, nil)
	return NewTimer(driver, opts...), driver, sched
}

func TestTimer_InitialState(t *testing.T) {
	timer, driver, _ := newTestTimer(t)

	assert.Equal(t, State{Mode: Focus, SecondsRemaining: 1500}, timer.Snapshot())
	assert.Equal(t, "25:00", timer.Snapshot().Clock())
	assert.False(t, driver.Active())
}

func TestTimer_FullFocusSessionFlipsToPausedBreak(t *testing.T) {
	timer, driver, sched := newTestTimer(t)

	timer.StartPause()
	require.True(t, driver.Active())

	sched.Advance(1499 * time.Second)
	assert.Equal(t, State{Mode: Focus, SecondsRemaining: 1, IsRunning: true}, timer.Snapshot())

	sched.Advance(time.Second)
	assert.Equal(t, State{Mode: Break, SecondsRemaining: 300}, timer.Snapshot())
	assert.False(t, driver.Active())

	// The session does not continue into the break on its own.
	sched.Advance(10 * time.Second)
	assert.Equal(t, State{Mode: Break, SecondsRemaining: 300}, timer.Snapshot())
}

func TestTimer_BreakEndsBackInFocus(t *testing.T) {
	timer, _, sched := newTestTimer(t)
	timer.SetMode(Break)
	timer.StartPause()

	sched.Advance(300 * time.Second)
	assert.Equal(t, State{Mode: Focus, SecondsRemaining: 1500}, timer.Snapshot())
}

func TestTimer_ResetDuringBreakKeepsMode(t *testing.T) {
	timer, driver, sched := newTestTimer(t)
	timer.SetMode(Break)
	timer.StartPause()
	sched.Advance(42 * time.Second)
	require.Equal(t, 258, timer.Snapshot().SecondsRemaining)

	timer.Reset()

	assert.Equal(t, State{Mode: Break, SecondsRemaining: 300}, timer.Snapshot())
	assert.False(t, driver.Active())
}

func TestTimer_SetModeStopsAndResets(t *testing.T) {
	timer, driver, sched := newTestTimer(t)
	timer.SetMode(Break)
	timer.StartPause()
	sched.Advance(180 * time.Second)
	require.Equal(t, State{Mode: Break, SecondsRemaining: 120, IsRunning: true}, timer.Snapshot())

	timer.SetMode(Focus)

	assert.Equal(t, State{Mode: Focus, SecondsRemaining: 1500}, timer.Snapshot())
	assert.False(t, driver.Active())
}

func TestTimer_SetModeIgnoresUnknownMode(t *testing.T) {
	timer, _, _ := newTestTimer(t)
	timer.SetMode(Mode("nap"))
	assert.Equal(t, State{Mode: Focus, SecondsRemaining: 1500}, timer.Snapshot())
}

func TestTimer_PauseInFinalSecondDoesNotUnderflow(t *testing.T) {
	timer, _, sched := newTestTimer(t, WithDurations(Durations{Focus: 3 * time.Second, Break: 2 * time.Second}))
	timer.StartPause()
	sched.Advance(2 * time.Second)
	require.Equal(t, 1, timer.Snapshot().SecondsRemaining)

	timer.StartPause()
	sched.Advance(5 * time.Second)

	assert.Equal(t, State{Mode: Focus, SecondsRemaining: 1}, timer.Snapshot())
}

func TestTimer_TickIgnoredWhilePaused(t *testing.T) {
	timer, _, _ := newTestTimer(t)
	timer.tick()
	assert.Equal(t, 1500, timer.Snapshot().SecondsRemaining)
}

func TestTimer_RemainingStaysInBounds(t *testing.T) {
	timer, _, sched := newTestTimer(t, WithDurations(Durations{Focus: 4 * time.Second, Break: 2 * time.Second}))

	for i := 0; i < 40; i++ {
		if !timer.Snapshot().IsRunning {
			timer.StartPause()
		}
		sched.Advance(time.Second)
		s := timer.Snapshot()
		max := timer.SecondsFor(s.Mode)
		if s.SecondsRemaining < 0 || s.SecondsRemaining > max {
			t.Fatalf("step %d: remaining = %d, want within [0, %d]", i, s.SecondsRemaining, max)
		}
	}
}

func TestTimer_SessionEndHookFiresOnlyOnAutomaticFlip(t *testing.T) {
	var ended []Mode
	timer, _, sched := newTestTimer(t,
		WithDurations(Durations{Focus: 2 * time.Second, Break: time.Second}),
		WithSessionEnd(func(m Mode, next State) {
			ended = append(ended, m)
			assert.False(t, next.IsRunning)
		}),
	)

	timer.SetMode(Break)
	timer.Reset()
	assert.Empty(t, ended)

	timer.StartPause()
	sched.Advance(time.Second)
	timer.StartPause()
	sched.Advance(2 * time.Second)

	assert.Equal(t, []Mode{Break, Focus}, ended)
}

func TestTimer_SubscribersShareOneClock(t *testing.T) {
	timer, _, sched := newTestTimer(t)

	var a, b []int
	timer.Subscribe(func() { a = append(a, timer.Snapshot().SecondsRemaining) })
	unsub := timer.Subscribe(func() { b = append(b, timer.Snapshot().SecondsRemaining) })

	timer.StartPause()
	sched.Advance(3 * time.Second)

	assert.Equal(t, []int{1500, 1499, 1498, 1497}, a)
	assert.Equal(t, a, b)

	// Dropping a view does not stop the countdown.
	unsub()
	sched.Advance(2 * time.Second)
	assert.Equal(t, 1495, timer.Snapshot().SecondsRemaining)
	assert.Len(t, b, 4)
}

func TestTimer_Progress(t *testing.T) {
	timer, _, sched := newTestTimer(t, WithDurations(Durations{Focus: 10 * time.Second, Break: 5 * time.Second}))
	assert.InDelta(t, 0.0, timer.Progress(), 1e-9)

	timer.StartPause()
	sched.Advance(4 * time.Second)
	assert.InDelta(t, 0.4, timer.Progress(), 1e-9)
}

func TestWithDurations_IgnoresSubSecondValues(t *testing.T) {
	timer, _, _ := newTestTimer(t, WithDurations(Durations{Focus: 0, Break: 90 * time.Second}))
	assert.Equal(t, 1500, timer.SecondsFor(Focus))
	assert.Equal(t, 90, timer.SecondsFor(Break))
}

func TestMode_OtherAndLabel(t *testing.T) {
	tests := []struct {
		mode  Mode
		other Mode
		label string
	}{
		{Focus, Break, "Focus"},
		{Break, Focus, "Break"},
	}
	for _, tt := range tests {
		if got := tt.mode.Other(); got != tt.other {
			t.Fatalf("%s.Other() = %s, want %s", tt.mode, got, tt.other)
		}
		if got := tt.mode.Label(); got != tt.label {
			t.Fatalf("%s.Label() = %q, want %q", tt.mode, got, tt.label)
		}
	}
}

func TestState_Clock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{1500, "25:00"},
		{61, "01:01"},
		{9, "00:09"},
		{0, "00:00"},
	}
	for _, tt := range tests {
		if got := (State{SecondsRemaining: tt.secs}).Clock(); got != tt.want {
			t.Fatalf("Clock(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
