// Package clock provides the repeating-callback primitive the session timer
// is driven by.
package clock

import (
	"sync"
	"time"
)

// Scheduler runs a callback repeatedly until the returned cancel function is
// called. Cancel must be safe to call more than once.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// Ticker is the wall-clock Scheduler backed by time.Ticker.
type Ticker struct{}

var _ Scheduler = Ticker{}

// Every starts a goroutine that invokes fn once per interval.
func (Ticker) Every(interval time.Duration, fn func()) func() {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

// Manual is a Scheduler whose time only moves when Advance is called. Jobs
// run synchronously on the caller's goroutine.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	nextID int
	jobs   map[int]*manualJob
}

type manualJob struct {
	id    int
	every time.Duration
	next  time.Duration
	fn    func()
}

var _ Scheduler = (*Manual)(nil)

// NewManual returns a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{jobs: make(map[int]*manualJob)}
}

// Every registers fn to fire each time Advance crosses a multiple of interval
// measured from now.
func (m *Manual) Every(interval time.Duration, fn func()) func() {
	if interval <= 0 {
		interval = time.Second
	}
	m.mu.Lock()
	m.nextID++
	id := m.nextID
	m.jobs[id] = &manualJob{id: id, every: interval, next: m.now + interval, fn: fn}
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.jobs, id)
		m.mu.Unlock()
	}
}

// Advance moves time forward by d, firing due jobs in time order. Jobs due at
// the same instant fire in registration order.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		var due *manualJob
		for _, job := range m.jobs {
			if job.next > target {
				continue
			}
			if due == nil || job.next < due.next || (job.next == due.next && job.id < due.id) {
				due = job
			}
		}
		if due == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = due.next
		due.next += due.every
		fn := due.fn
		m.mu.Unlock()

		fn()
	}
}

// Active reports how many jobs are registered.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.jobs)
}
