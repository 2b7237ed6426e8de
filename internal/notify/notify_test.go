package notify

import (
	"errors"
	"strings"
	"testing"

	"github.com/five82/focushub/internal/pomodoro"
)

type recorder struct {
	titles   []string
	messages []string
	beeps    int
	err      error
}

func newTestDispatcher(cfg Config, rec *recorder) *Dispatcher {
	d := NewDispatcher(cfg, nil)
	d.notify = func(title, message string) error {
		rec.titles = append(rec.titles, title)
		rec.messages = append(rec.messages, message)
		return rec.err
	}
	d.beep = func() error {
		rec.beeps++
		return rec.err
	}
	return d
}

func TestDispatch_Channels(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantNotify  int
		wantBeeps   int
		wantEnabled bool
	}{
		{name: "off", cfg: Config{}},
		{name: "desktop", cfg: Config{Desktop: true}, wantNotify: 1, wantEnabled: true},
		{name: "bell", cfg: Config{Bell: true}, wantBeeps: 1, wantEnabled: true},
		{name: "both", cfg: Config{Desktop: true, Bell: true}, wantNotify: 1, wantBeeps: 1, wantEnabled: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			d := newTestDispatcher(tt.cfg, rec)
			if got := d.Enabled(); got != tt.wantEnabled {
				t.Fatalf("Enabled() = %v, want %v", got, tt.wantEnabled)
			}
			d.Dispatch(Event{Title: "t", Message: "m"})
			if len(rec.titles) != tt.wantNotify {
				t.Fatalf("notify calls = %d, want %d", len(rec.titles), tt.wantNotify)
			}
			if rec.beeps != tt.wantBeeps {
				t.Fatalf("beeps = %d, want %d", rec.beeps, tt.wantBeeps)
			}
		})
	}
}

func TestDispatch_DefaultsAndTruncates(t *testing.T) {
	rec := &recorder{}
	d := newTestDispatcher(Config{Desktop: true}, rec)

	d.Dispatch(Event{Title: "  ", Message: strings.Repeat("x", 900)})
	if rec.titles[0] != "FocusHub" {
		t.Fatalf("title = %q, want FocusHub", rec.titles[0])
	}
	if got := len(rec.messages[0]); got != 803 {
		t.Fatalf("message length = %d, want 803", got)
	}
}

func TestDispatch_ErrorsAreSwallowed(t *testing.T) {
	rec := &recorder{err: errors.New("no dbus")}
	d := newTestDispatcher(Config{Desktop: true, Bell: true}, rec)
	d.Dispatch(Event{Title: "t"})
	if rec.beeps != 1 {
		t.Fatalf("beeps = %d, want 1 after notify failure", rec.beeps)
	}
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher
	if d.Enabled() {
		t.Fatal("nil dispatcher reports enabled")
	}
	d.Dispatch(Event{Title: "t"})
}

func TestSessionEnded(t *testing.T) {
	focus := SessionEnded(pomodoro.Focus, pomodoro.State{Mode: pomodoro.Break, SecondsRemaining: 300})
	if focus.Title != "Focus session complete" || focus.Message != "Time for a 05:00 break." {
		t.Fatalf("SessionEnded(focus) = %+v", focus)
	}
	brk := SessionEnded(pomodoro.Break, pomodoro.State{Mode: pomodoro.Focus, SecondsRemaining: 1500})
	if brk.Title != "Break over" || brk.Message != "Ready for another 25:00 of focus?" {
		t.Fatalf("SessionEnded(break) = %+v", brk)
	}
}
