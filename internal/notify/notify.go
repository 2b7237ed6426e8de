// Package notify tells the user a pomodoro session has ended.
package notify

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gen2brain/beeep"

	"github.com/five82/focushub/internal/pomodoro"
)

const appName = "FocusHub"

// Event describes one notification.
type Event struct {
	Title   string
	Message string
}

// Config selects the channels a Dispatcher uses.
type Config struct {
	Desktop bool
	Bell    bool
}

// Dispatcher sends events to the configured channels. Delivery failures are
// logged and otherwise ignored.
type Dispatcher struct {
	cfg    Config
	logger *slog.Logger
	notify func(title, message string) error
	beep   func() error
}

// NewDispatcher returns a Dispatcher backed by beeep.
func NewDispatcher(cfg Config, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	beeep.AppName = appName
	return &Dispatcher{
		cfg:    cfg,
		logger: logger,
		notify: func(title, message string) error { return beeep.Notify(title, message, "") },
		beep:   func() error { return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration) },
	}
}

// Enabled reports whether any channel is switched on.
func (d *Dispatcher) Enabled() bool {
	return d != nil && (d.cfg.Desktop || d.cfg.Bell)
}

// Dispatch delivers event on every enabled channel.
func (d *Dispatcher) Dispatch(event Event) {
	if !d.Enabled() {
		return
	}
	title := strings.TrimSpace(event.Title)
	if title == "" {
		title = appName
	}
	message := strings.TrimSpace(event.Message)
	if len(message) > 800 {
		message = message[:800] + "..."
	}

	if d.cfg.Desktop {
		if err := d.notify(title, message); err != nil {
			d.logger.Warn("desktop notification failed", "error", err)
		}
	}
	if d.cfg.Bell {
		if err := d.beep(); err != nil {
			d.logger.Warn("bell failed", "error", err)
		}
	}
}

// SessionEnded builds the event for a finished session.
func SessionEnded(ended pomodoro.Mode, next pomodoro.State) Event {
	switch ended {
	case pomodoro.Focus:
		return Event{
			Title:   "Focus session complete",
			Message: fmt.Sprintf("Time for a %s break.", next.Clock()),
		}
	default:
		return Event{
			Title:   "Break over",
			Message: fmt.Sprintf("Ready for another %s of focus?", next.Clock()),
		}
	}
}
