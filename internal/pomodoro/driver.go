package pomodoro

import (
	"log/slog"
	"sync"
	"time"

	"github.com/five82/focushub/internal/clock"
)

const tickInterval = time.Second

// Driver is the shared once-per-second heartbeat for every Timer. It is
// started when the first timer begins running and cancelled when the last
// running timer stops.
type Driver struct {
	mu      sync.Mutex
	sched   clock.Scheduler
	logger  *slog.Logger
	running map[*Timer]struct{}
	cancel  func()
}

// NewDriver builds a Driver on top of sched. A nil sched uses the wall clock.
func NewDriver(sched clock.Scheduler, logger *slog.Logger) *Driver {
	if sched == nil {
		sched = clock.Ticker{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		sched:   sched,
		logger:  logger,
		running: make(map[*Timer]struct{}),
	}
}

// Active reports whether the heartbeat is scheduled.
func (d *Driver) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancel != nil
}

// Demand reports how many timers are currently running.
func (d *Driver) Demand() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.running)
}

// Stop cancels the heartbeat regardless of demand.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	clear(d.running)
}

// sync reconciles the demand set with t's latest state. It reads the
// snapshot under the driver lock so that racing callers converge on the
// final value.
func (d *Driver) sync(t *Timer) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t.Snapshot().IsRunning {
		d.running[t] = struct{}{}
	} else {
		delete(d.running, t)
	}

	switch {
	case len(d.running) > 0 && d.cancel == nil:
		d.cancel = d.sched.Every(tickInterval, d.tick)
		d.logger.Debug("timer driver started")
	case len(d.running) == 0:
		d.stopLocked()
	}
}

func (d *Driver) stopLocked() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	d.cancel = nil
	d.logger.Debug("timer driver stopped")
}

func (d *Driver) tick() {
	d.mu.Lock()
	timers := make([]*Timer, 0, len(d.running))
	for t := range d.running {
		timers = append(timers, t)
	}
	d.mu.Unlock()

	for _, t := range timers {
		t.tick()
	}
}
