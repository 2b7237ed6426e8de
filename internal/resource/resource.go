package resource

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/five82/focushub/internal/state"
)

// Phase is the tri-state presence of a resource's value.
type Phase int

const (
	PhaseAbsent Phase = iota
	PhaseLoading
	PhasePresent
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePresent:
		return "present"
	default:
		return "absent"
	}
}

// State is the observable shape of a remote-backed store. IsLoading and a
// non-empty Err never hold together once a fetch has settled.
type State[T any] struct {
	Value     T
	HasValue  bool
	IsLoading bool
	Err       string
	UpdatedAt time.Time
}

// Phase reports whether a value is present, being fetched for the first
// time, or absent.
func (s State[T]) Phase() Phase {
	switch {
	case s.HasValue:
		return PhasePresent
	case s.IsLoading:
		return PhaseLoading
	default:
		return PhaseAbsent
	}
}

// Fetcher performs one request against a remote data source.
type Fetcher[T any] interface {
	Fetch(ctx context.Context) (T, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc[T any] func(ctx context.Context) (T, error)

// Fetch calls f.
func (f FetcherFunc[T]) Fetch(ctx context.Context) (T, error) { return f(ctx) }

// Option customises a Resource.
type Option func(*options)

type options struct {
	name    string
	logger  *slog.Logger
	timeout time.Duration
	message func(error) string
	baseCtx context.Context
}

// WithName labels log lines from this resource.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTimeout bounds every fetch. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithMessage overrides how a fetch error is rendered into Err.
func WithMessage(fn func(error) string) Option {
	return func(o *options) {
		if fn != nil {
			o.message = fn
		}
	}
}

// WithContext sets the parent context for fetches started automatically on
// first subscription.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.baseCtx = ctx
		}
	}
}

// Resource is a Store whose value comes from a remote fetch. At most one
// fetch is in flight at a time.
type Resource[T any] struct {
	opts    options
	store   *state.Store[State[T]]
	fetcher Fetcher[T]

	mu       sync.Mutex
	inflight *Request
	primed   bool
}

// New builds an empty Resource backed by fetcher.
func New[T any](fetcher Fetcher[T], opts ...Option) *Resource[T] {
	o := options{
		name:    "resource",
		logger:  slog.Default(),
		message: Message,
		baseCtx: context.Background(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Resource[T]{
		opts:    o,
		store:   state.New(State[T]{}),
		fetcher: fetcher,
	}
}

// Snapshot returns the current state.
func (r *Resource[T]) Snapshot() State[T] {
	return r.store.Snapshot()
}

// Subscribe registers fn for change notifications. The first subscription
// to a resource without a value starts a fetch; later subscriptions never do.
func (r *Resource[T]) Subscribe(fn func()) (unsubscribe func()) {
	unsubscribe = r.store.Subscribe(fn)

	r.mu.Lock()
	first := !r.primed
	r.primed = true
	r.mu.Unlock()

	if first && !r.store.Snapshot().HasValue {
		r.Refresh(r.opts.baseCtx)
	}
	return unsubscribe
}

// Refresh starts a fetch and returns its handle. If a fetch is already in
// flight nothing new starts and that fetch's handle is returned instead.
// Errors never escape; they land in the state's Err field.
func (r *Resource[T]) Refresh(ctx context.Context) *Request {
	if ctx == nil {
		ctx = r.opts.baseCtx
	}

	r.mu.Lock()
	if r.inflight != nil {
		req := r.inflight
		r.mu.Unlock()
		r.opts.logger.Debug("refresh dropped, fetch in flight", "resource", r.opts.name)
		return req
	}
	var fctx context.Context
	var cancel context.CancelFunc
	if r.opts.timeout > 0 {
		fctx, cancel = context.WithTimeout(ctx, r.opts.timeout)
	} else {
		fctx, cancel = context.WithCancel(ctx)
	}
	req := &Request{owner: &r.mu, cancel: cancel, done: make(chan struct{})}
	r.inflight = req
	r.mu.Unlock()

	r.store.Update(func(s State[T]) State[T] {
		s.IsLoading = true
		s.Err = ""
		return s
	})
	r.opts.logger.Info("fetch started", "resource", r.opts.name)

	go r.run(fctx, req)
	return req
}

func (r *Resource[T]) run(ctx context.Context, req *Request) {
	defer close(req.done)
	defer req.cancel()

	value, err := r.fetcher.Fetch(ctx)
	abandoned := errors.Is(ctx.Err(), context.Canceled)
	superseded := false

	r.store.Update(func(s State[T]) State[T] {
		// Clearing inflight inside the store's write lock orders any
		// following Refresh after this completion.
		r.mu.Lock()
		owns := r.inflight == req
		if owns {
			r.inflight = nil
		}
		if req.cancelled {
			abandoned = true
		}
		r.mu.Unlock()

		if !owns {
			superseded = true
			return s
		}
		s.IsLoading = false
		switch {
		case abandoned:
		case err != nil:
			s.Err = r.opts.message(err)
		default:
			s.Value = value
			s.HasValue = true
			s.Err = ""
			s.UpdatedAt = time.Now()
		}
		return s
	})

	switch {
	case superseded:
		r.opts.logger.Debug("fetch result dropped", "resource", r.opts.name)
	case abandoned:
		r.opts.logger.Info("fetch abandoned", "resource", r.opts.name)
	case err != nil:
		r.opts.logger.Warn("fetch failed", "resource", r.opts.name, "kind", KindOf(err), "error", err)
	default:
		r.opts.logger.Info("fetch succeeded", "resource", r.opts.name)
	}
}

// Request is the handle for one fetch.
type Request struct {
	owner     *sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
	cancelled bool
}

// Cancel abandons the fetch. Its result is discarded: the resource keeps its
// previous value and error, and only the loading flag clears. Deduplicated
// callers hold the same handle, so cancelling any of them cancels the fetch.
func (q *Request) Cancel() {
	q.owner.Lock()
	q.cancelled = true
	q.owner.Unlock()
	q.cancel()
}

// Done is closed once the fetch has settled and state has been updated.
func (q *Request) Done() <-chan struct{} {
	return q.done
}

// Wait blocks until the fetch settles or ctx ends.
func (q *Request) Wait(ctx context.Context) error {
	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
