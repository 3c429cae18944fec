package feed

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gymfeed/internal/client/client"
	"github.com/dmitrijs2005/gymfeed/internal/logging"
)

// DefaultPageSize is the page size used by the feeds.
const DefaultPageSize = 10

var (
	// ErrNotReady is returned when there is no token yet. Nothing is
	// requested and the fetcher state is left untouched.
	ErrNotReady = errors.New("feed not ready: no session token")
	// ErrBusy is returned when a request is already in flight.
	ErrBusy = errors.New("feed fetch already in flight")
	// ErrDiscarded is returned for results that arrived after a Remount.
	ErrDiscarded = errors.New("feed result discarded after remount")
)

type Status int

const (
	Idle Status = iota
	Loading
	Ready
	Errored
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Errored:
		return "errored"
	}
	return "unknown"
}

// PageFunc requests one page of items.
type PageFunc[T any] func(ctx context.Context, token string, limit, skip int) ([]T, error)

// TransformFunc maps an item before it is stored, e.g. to authorize media
// URLs with the token the page was fetched with.
type TransformFunc[T any] func(item T, token string) T

// Snapshot is a copy of the fetcher state.
type Snapshot[T any] struct {
	Items   []T
	HasMore bool
	Err     string
	Status  Status
	// Page is the index of the last page applied, -1 before the first one.
	Page int
}

type Option[T any] func(*Fetcher[T])

func WithPageSize[T any](n int) Option[T] {
	return func(f *Fetcher[T]) {
		if n > 0 {
			f.pageSize = n
		}
	}
}

func WithTransform[T any](fn TransformFunc[T]) Option[T] {
	return func(f *Fetcher[T]) { f.transform = fn }
}

func WithLogger[T any](log logging.Logger) Option[T] {
	return func(f *Fetcher[T]) { f.log = log }
}

type Fetcher[T any] struct {
	mu sync.Mutex

	pageSize  int
	fetch     PageFunc[T]
	token     func() string
	transform TransformFunc[T]
	log       logging.Logger

	items    []T
	hasMore  bool
	errMsg   string
	status   Status
	page     int
	inFlight bool
	gen      uint64
}

// New returns a Fetcher that reads the current token through token on every
// request.
func New[T any](fetch PageFunc[T], token func() string, opts ...Option[T]) *Fetcher[T] {
	f := &Fetcher[T]{
		pageSize: DefaultPageSize,
		fetch:    fetch,
		token:    token,
		log:      logging.Discard(),
	}
	for _, o := range opts {
		o(f)
	}
	f.reset()
	return f
}

func (f *Fetcher[T]) reset() {
	f.items = nil
	f.hasMore = true
	f.errMsg = ""
	f.status = Idle
	f.page = -1
	f.inFlight = false
}

// Snapshot returns a copy of the current state.
func (f *Fetcher[T]) Snapshot() Snapshot[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]T, len(f.items))
	copy(items, f.items)
	return Snapshot[T]{
		Items:   items,
		HasMore: f.hasMore,
		Err:     f.errMsg,
		Status:  f.status,
		Page:    f.page,
	}
}

// Remount starts a new mount lifecycle: state goes back to Idle and results
// of requests issued before the call are dropped.
func (f *Fetcher[T]) Remount() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	f.reset()
}

// FetchPage requests page i (skip = i*pageSize) and applies the result.
func (f *Fetcher[T]) FetchPage(ctx context.Context, i int) error {
	f.mu.Lock()
	token, gen, err := f.begin()
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.run(ctx, token, gen, i)
}

// LoadMore fetches the page after the last applied one. It does nothing
// while a request is in flight or once the feed is exhausted.
func (f *Fetcher[T]) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.inFlight || !f.hasMore {
		f.mu.Unlock()
		return nil
	}
	next := f.page + 1
	token, gen, err := f.begin()
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.run(ctx, token, gen, next)
}

// begin marks a request in flight. Callers hold f.mu.
func (f *Fetcher[T]) begin() (string, uint64, error) {
	token := f.token()
	if token == "" {
		return "", 0, ErrNotReady
	}
	if f.inFlight {
		return "", 0, ErrBusy
	}
	f.inFlight = true
	f.status = Loading
	return token, f.gen, nil
}

func (f *Fetcher[T]) run(ctx context.Context, token string, gen uint64, i int) error {
	items, err := f.fetch(ctx, token, f.pageSize, i*f.pageSize)

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.gen {
		return ErrDiscarded
	}
	f.inFlight = false

	if err != nil {
		f.errMsg = client.MessageOf(err, client.GenericErrorMessage)
		f.status = Errored
		f.log.Warn(ctx, "feed page failed", "page", i, "err", err)
		return err
	}

	// page slices belong to the PageFunc and may be shared
	page := make([]T, len(items))
	for k, it := range items {
		if f.transform != nil {
			it = f.transform(it, token)
		}
		page[k] = it
	}

	if i == 0 {
		f.items = page
	} else {
		f.items = append(f.items, page...)
	}
	f.hasMore = len(items) == f.pageSize
	f.errMsg = ""
	f.status = Ready
	f.page = i
	return nil
}
