// Package listing owns the fetch lifecycle of one paginated, searchable
// resource list.
package listing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/soley/admin-cli/internal/debounce"
	"github.com/soley/admin-cli/internal/dialog"
	"github.com/soley/admin-cli/internal/models"
	"github.com/soley/admin-cli/pkg/log"
)

// State is the fetch lifecycle state.
type State int

const (
	Idle State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "error"
	default:
		return "idle"
	}
}

// DefaultPageSize is used when no page size is configured.
const DefaultPageSize = 10

// FetchFunc loads one page. It may be called concurrently.
type FetchFunc[T any] func(ctx context.Context, p models.ListParams) (models.Page[T], error)

// Snapshot is a consistent copy of the controller state.
type Snapshot[T any] struct {
	State    State
	Items    []T
	Info     models.PageInfo
	Query    string
	RawQuery string
	Err      error
}

type settings struct {
	pageSize int
	window   time.Duration
	title    string
	notifier dialog.Notifier
	logger   log.Logger
	onChange []any
}

// Option configures a Controller.
type Option func(*settings)

// WithPageSize sets the page size sent as limit.
func WithPageSize(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithDebounce sets the search quiet window.
func WithDebounce(d time.Duration) Option {
	return func(s *settings) { s.window = d }
}

// WithTitle names the list in error notifications, e.g. "menu items".
func WithTitle(title string) Option {
	return func(s *settings) { s.title = title }
}

// WithNotifier surfaces load failures.
func WithNotifier(n dialog.Notifier) Option {
	return func(s *settings) { s.notifier = n }
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithOnChange registers fn as a change listener, like OnChange.
func WithOnChange[T any](fn func(Snapshot[T])) Option {
	return func(s *settings) { s.onChange = append(s.onChange, fn) }
}

// Controller is a paginated list bound to one FetchFunc.
//
// Every load takes a sequence number when issued; a result arriving after a
// newer load was issued is discarded, so the latest query wins. A failed
// load keeps the previous items.
type Controller[T any] struct {
	fetch    FetchFunc[T]
	pageSize int
	title    string
	notifier dialog.Notifier
	l        log.Logger
	search   *debounce.Debouncer

	mu        sync.Mutex
	base      context.Context
	seq       uint64
	state     State
	items     []T
	info      models.PageInfo
	query     string
	err       error
	listeners []func(Snapshot[T])
}

// New builds a Controller. Nothing is fetched until Mount or Load.
func New[T any](fetch FetchFunc[T], opts ...Option) *Controller[T] {
	s := settings{
		pageSize: DefaultPageSize,
		window:   debounce.DefaultWindow,
		title:    "items",
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = log.NewNop()
	}

	c := &Controller[T]{
		fetch:    fetch,
		pageSize: s.pageSize,
		title:    s.title,
		notifier: s.notifier,
		l:        s.logger,
		base:     context.Background(),
		items:    []T{},
		info:     models.PageInfo{}.Normalize(),
	}
	for _, fn := range s.onChange {
		if fn, ok := fn.(func(Snapshot[T])); ok {
			c.listeners = append(c.listeners, fn)
		}
	}
	c.search = debounce.New(s.window, c.querySettled)
	return c
}

// OnChange registers fn to receive a snapshot after every state change.
func (c *Controller[T]) OnChange(fn func(Snapshot[T])) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Mount binds ctx for debounced loads and loads page 1 with no filter.
func (c *Controller[T]) Mount(ctx context.Context) error {
	c.mu.Lock()
	c.base = ctx
	c.mu.Unlock()
	return c.Load(ctx, 1, "")
}

// Load fetches page (clamped to at least 1) for query and replaces the
// current result on success.
func (c *Controller[T]) Load(ctx context.Context, page int, query string) error {
	if page < 1 {
		page = 1
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state = Loading
	c.query = query
	c.mu.Unlock()
	c.emit()

	res, err := c.fetch(ctx, models.ListParams{Page: page, Limit: c.pageSize, Search: query})

	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		c.l.Debugf(ctx, "listing: discarded superseded %s load #%d", c.title, seq)
		return nil
	}
	if err != nil {
		c.state = Failed
		c.err = err
		c.mu.Unlock()

		c.l.Errorf(ctx, "listing: loading %s failed: %v", c.title, err)
		if c.notifier != nil {
			c.notifier.Notify(dialog.KindError, "Error", fmt.Sprintf("Error loading %s: %s", c.title, err.Error()))
		}
		c.emit()
		return err
	}

	items := res.Items
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.info = res.Info.Normalize()
	c.state = Ready
	c.err = nil
	c.mu.Unlock()
	c.emit()
	return nil
}

// CanGoTo reports whether n is within [1, totalPages].
func (c *Controller[T]) CanGoTo(n int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return n >= 1 && n <= c.info.TotalPages
}

// GoToPage loads page n with the current query. Out-of-range pages are a no-op.
func (c *Controller[T]) GoToPage(ctx context.Context, n int) error {
	c.mu.Lock()
	total, query := c.info.TotalPages, c.query
	c.mu.Unlock()

	if n < 1 || n > total {
		return nil
	}
	return c.Load(ctx, n, query)
}

// Next goes to the following page, if any.
func (c *Controller[T]) Next(ctx context.Context) error {
	return c.GoToPage(ctx, c.currentPage()+1)
}

// Prev goes to the preceding page, if any.
func (c *Controller[T]) Prev(ctx context.Context) error {
	return c.GoToPage(ctx, c.currentPage()-1)
}

// Reload re-fetches the current page with the current query.
func (c *Controller[T]) Reload(ctx context.Context) error {
	c.mu.Lock()
	page, query := c.info.CurrentPage, c.query
	c.mu.Unlock()
	return c.Load(ctx, page, query)
}

// SetQuery records the search text; the list reloads at page 1 once typing settles.
func (c *Controller[T]) SetQuery(raw string) {
	c.search.Set(raw)
	c.emit()
}

// ClearQuery empties the search text, reloading unfiltered results after the window.
func (c *Controller[T]) ClearQuery() {
	c.SetQuery("")
}

// FlushQuery applies pending search text immediately.
func (c *Controller[T]) FlushQuery() {
	c.search.Flush()
}

// Close cancels any pending search settle.
func (c *Controller[T]) Close() {
	c.search.Stop()
}

// Snapshot returns the current state.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller[T]) snapshotLocked() Snapshot[T] {
	items := make([]T, len(c.items))
	copy(items, c.items)
	return Snapshot[T]{
		State:    c.state,
		Items:    items,
		Info:     c.info,
		Query:    c.query,
		RawQuery: c.search.Raw(),
		Err:      c.err,
	}
}

func (c *Controller[T]) currentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.info.CurrentPage
}

func (c *Controller[T]) querySettled(q string) {
	c.mu.Lock()
	ctx := c.base
	c.mu.Unlock()
	// errors are already surfaced through the notifier
	_ = c.Load(ctx, 1, q)
}

func (c *Controller[T]) emit() {
	c.mu.Lock()
	if len(c.listeners) == 0 {
		c.mu.Unlock()
		return
	}
	snap := c.snapshotLocked()
	listeners := append([]func(Snapshot[T]){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}
