// Package tasks holds the to-do list shown on the overview and tasks screens.
package tasks

import (
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/five82/focushub/internal/state"
)

// Task is one to-do item. Seq records creation order and never repeats
// within a List.
type Task struct {
	ID        string
	Seq       uint64
	Title     string
	Completed bool
}

type listState struct {
	items   []Task
	nextSeq uint64
}

// List is the task list store. The zero value is not usable; call New.
type List struct {
	store  *state.Store[listState]
	logger *slog.Logger
	newID  func() string
}

// Option configures a List.
type Option func(*List)

// WithLogger sets the logger used for list mutations.
func WithLogger(logger *slog.Logger) Option {
	return func(l *List) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithIDGenerator replaces the uuid generator.
func WithIDGenerator(fn func() string) Option {
	return func(l *List) {
		if fn != nil {
			l.newID = fn
		}
	}
}

// New returns an empty list.
func New(opts ...Option) *List {
	l := &List{
		store:  state.New(listState{nextSeq: 1}),
		logger: slog.Default(),
		newID:  newUUID,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Subscribe registers fn for change notifications.
func (l *List) Subscribe(fn func()) (unsubscribe func()) {
	return l.store.Subscribe(fn)
}

// Tasks returns a copy of the tasks in insertion order.
func (l *List) Tasks() []Task {
	return slices.Clone(l.store.Snapshot().items)
}

// Add appends a task. Blank titles are ignored and reported as false.
func (l *List) Add(title string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}
	id := l.newID()
	l.store.Update(func(s listState) listState {
		items := make([]Task, len(s.items), len(s.items)+1)
		copy(items, s.items)
		items = append(items, Task{ID: id, Seq: s.nextSeq, Title: title})
		return listState{items: items, nextSeq: s.nextSeq + 1}
	})
	l.logger.Debug("task added", "id", id)
	return true
}

// Toggle flips the completion flag of the task with id. Unknown ids are
// ignored.
func (l *List) Toggle(id string) {
	l.mutate(id, func(items []Task, i int) []Task {
		out := slices.Clone(items)
		out[i].Completed = !out[i].Completed
		return out
	})
}

// Delete removes the task with id. Unknown ids are ignored.
func (l *List) Delete(id string) {
	l.mutate(id, func(items []Task, i int) []Task {
		return slices.Delete(slices.Clone(items), i, i+1)
	})
}

func (l *List) mutate(id string, fn func(items []Task, i int) []Task) {
	if i := indexOf(l.store.Snapshot().items, id); i < 0 {
		return
	}
	l.store.Update(func(s listState) listState {
		i := indexOf(s.items, id)
		if i < 0 {
			return s
		}
		s.items = fn(s.items, i)
		return s
	})
}

func indexOf(items []Task, id string) int {
	return slices.IndexFunc(items, func(t Task) bool { return t.ID == id })
}

// Top returns at most n incomplete tasks in creation order.
func (l *List) Top(n int) []Task {
	if n <= 0 {
		return nil
	}
	var open []Task
	for _, t := range l.store.Snapshot().items {
		if !t.Completed {
			open = append(open, t)
		}
	}
	slices.SortFunc(open, func(a, b Task) int {
		switch {
		case a.Seq < b.Seq:
			return -1
		case a.Seq > b.Seq:
			return 1
		}
		return 0
	})
	if len(open) > n {
		open = open[:n]
	}
	return open
}

// Counts returns the number of completed tasks and the total.
func (l *List) Counts() (completed, total int) {
	items := l.store.Snapshot().items
	for _, t := range items {
		if t.Completed {
			completed++
		}
	}
	return completed, len(items)
}

// Progress returns the rounded completion percentage, 0 for an empty list.
func (l *List) Progress() int {
	completed, total := l.Counts()
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
