// Package section binds a list controller to columns and mutation actions
// for one resource. Mutations go through the API only after the form
// validates; destructive ones need confirmation; each successful mutation
// is followed by exactly one reload and a notification.
package section

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/soley/admin-cli/internal/dialog"
	"github.com/soley/admin-cli/internal/format"
	"github.com/soley/admin-cli/internal/forms"
	"github.com/soley/admin-cli/internal/listing"
	"github.com/soley/admin-cli/pkg/log"
)

var (
	// ErrCancelled is returned when the operator dismisses a confirmation.
	ErrCancelled = errors.New("cancelled")
	// ErrUnsupported is returned for a mutation the resource does not offer.
	ErrUnsupported = errors.New("operation not supported")
	// ErrNotFound is returned when an id is not on the current page.
	ErrNotFound = errors.New("not found on the current page")
)

// Column renders one cell per item.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Mutator performs the create, update and delete calls of a resource.
type Mutator[F forms.Form] interface {
	Create(ctx context.Context, f F) error
	Update(ctx context.Context, id string, f F) error
	Delete(ctx context.Context, id string) error
}

// Funcs adapts plain functions to a Mutator. A nil function is unsupported.
type Funcs[F forms.Form] struct {
	CreateFunc func(ctx context.Context, f F) error
	UpdateFunc func(ctx context.Context, id string, f F) error
	DeleteFunc func(ctx context.Context, id string) error
}

func (m Funcs[F]) Create(ctx context.Context, f F) error {
	if m.CreateFunc == nil {
		return ErrUnsupported
	}
	return m.CreateFunc(ctx, f)
}

func (m Funcs[F]) Update(ctx context.Context, id string, f F) error {
	if m.UpdateFunc == nil {
		return ErrUnsupported
	}
	return m.UpdateFunc(ctx, id, f)
}

func (m Funcs[F]) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc == nil {
		return ErrUnsupported
	}
	return m.DeleteFunc(ctx, id)
}

// Options configures a Section.
type Options[T any, F forms.Form] struct {
	// Name is the singular resource name used in messages, e.g. "menu item".
	Name string
	// Plural names the list, e.g. "menu items".
	Plural    string
	Fetch     listing.FetchFunc[T]
	ID        func(T) string
	Columns   []Column[T]
	Mutator   Mutator[F]
	Confirmer dialog.Confirmer
	Notifier  dialog.Notifier
	Logger    log.Logger
	PageSize  int
	Debounce  time.Duration
}

// Section is one resource list with its actions.
type Section[T any, F forms.Form] struct {
	name, plural string
	id           func(T) string
	columns      []Column[T]
	mutator      Mutator[F]
	confirmer    dialog.Confirmer
	notifier     dialog.Notifier
	l            log.Logger
	list         *listing.Controller[T]
}

// New builds a Section. Nothing is fetched until Mount.
func New[T any, F forms.Form](o Options[T, F]) *Section[T, F] {
	if o.Logger == nil {
		o.Logger = log.NewNop()
	}
	if o.Plural == "" {
		o.Plural = o.Name + "s"
	}
	if o.Mutator == nil {
		o.Mutator = Funcs[F]{}
	}
	if o.Confirmer == nil {
		o.Confirmer = dialog.Always(false)
	}
	if o.Notifier == nil {
		o.Notifier = dialog.NewManager(nil, nil)
	}

	l := o.Logger.With("section", o.Plural)
	return &Section[T, F]{
		name:      o.Name,
		plural:    o.Plural,
		id:        o.ID,
		columns:   o.Columns,
		mutator:   o.Mutator,
		confirmer: o.Confirmer,
		notifier:  o.Notifier,
		l:         l,
		list: listing.New(o.Fetch,
			listing.WithPageSize(o.PageSize),
			listing.WithDebounce(o.Debounce),
			listing.WithTitle(o.Plural),
			listing.WithNotifier(o.Notifier),
			listing.WithLogger(l),
		),
	}
}

// Name returns the singular resource name.
func (s *Section[T, F]) Name() string { return s.name }

// Plural returns the list name.
func (s *Section[T, F]) Plural() string { return s.plural }

// List exposes the underlying controller for paging and search.
func (s *Section[T, F]) List() *listing.Controller[T] { return s.list }

// Mount loads the first page.
func (s *Section[T, F]) Mount(ctx context.Context) error {
	return s.list.Mount(ctx)
}

// Close stops pending search timers.
func (s *Section[T, F]) Close() {
	s.list.Close()
}

// Headers returns the column headers.
func (s *Section[T, F]) Headers() []string {
	out := make([]string, len(s.columns))
	for i, c := range s.columns {
		out[i] = c.Header
	}
	return out
}

// Rows renders the current items through the columns.
func (s *Section[T, F]) Rows() [][]string {
	items := s.list.Snapshot().Items
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		row := make([]string, len(s.columns))
		for i, c := range s.columns {
			row[i] = c.Value(it)
		}
		rows = append(rows, row)
	}
	return rows
}

// Items returns the items of the current page.
func (s *Section[T, F]) Items() []T {
	return s.list.Snapshot().Items
}

// Find looks id up on the current page.
func (s *Section[T, F]) Find(id string) (T, error) {
	var zero T
	if s.id == nil {
		return zero, ErrNotFound
	}
	for _, it := range s.list.Snapshot().Items {
		if s.id(it) == id {
			return it, nil
		}
	}
	return zero, ErrNotFound
}

// Table returns the current page as a format.Table with a paging footer.
func (s *Section[T, F]) Table() format.Table {
	snap := s.list.Snapshot()
	footer := fmt.Sprintf("Page %d of %d (%d total)", snap.Info.CurrentPage, snap.Info.TotalPages, snap.Info.TotalItems)
	if snap.Query != "" {
		footer += fmt.Sprintf(" matching %q", snap.Query)
	}
	return format.Table{
		Headers: s.Headers(),
		Rows:    s.Rows(),
		Footer:  footer,
		Empty:   fmt.Sprintf("No %s found", s.plural),
	}
}

// Render writes the current page as a table.
func (s *Section[T, F]) Render(w io.Writer, useColors bool) error {
	return format.NewTableFormatter(w, useColors).Format(s.Table())
}

// Add validates f and creates a record.
func (s *Section[T, F]) Add(ctx context.Context, f F) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return s.mutate(ctx, "created", "creating", func(ctx context.Context) error {
		return s.mutator.Create(ctx, f)
	})
}

// Edit validates f and updates record id.
func (s *Section[T, F]) Edit(ctx context.Context, id string, f F) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return s.mutate(ctx, "updated", "updating", func(ctx context.Context) error {
		return s.mutator.Update(ctx, id, f)
	})
}

// Delete removes record id after the operator confirms.
func (s *Section[T, F]) Delete(ctx context.Context, id string) error {
	msg := fmt.Sprintf("Are you sure you want to delete this %s? This action cannot be undone.", s.name)
	if !s.confirmer.Confirm(ctx, "Confirm Deletion", msg) {
		return ErrCancelled
	}
	return s.mutate(ctx, "deleted", "deleting", func(ctx context.Context) error {
		return s.mutator.Delete(ctx, id)
	})
}

// Action is a resource specific mutation such as an order status change.
type Action struct {
	// Confirm, when set, is asked before Run.
	Confirm string
	// Success is the notification text on success.
	Success string
	// Failure prefixes the error text on failure.
	Failure string
	// Form, when set, is validated before anything else.
	Form forms.Form
	Run  func(ctx context.Context) error
}

// Act runs a with the same confirm, notify and reload rules as the built-in actions.
func (s *Section[T, F]) Act(ctx context.Context, a Action) error {
	if a.Form != nil {
		if err := a.Form.Validate(); err != nil {
			return err
		}
	}
	if a.Confirm != "" && !s.confirmer.Confirm(ctx, "Please Confirm", a.Confirm) {
		return ErrCancelled
	}

	if err := a.Run(ctx); err != nil {
		s.l.Errorf(ctx, "section: %s failed: %v", strings.ToLower(a.Failure), err)
		s.notifier.Notify(dialog.KindError, "Error", a.Failure+": "+err.Error())
		return err
	}
	s.notifier.Notify(dialog.KindSuccess, "Success!", a.Success)
	s.reload(ctx)
	return nil
}

func (s *Section[T, F]) mutate(ctx context.Context, done, doing string, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		if errors.Is(err, ErrUnsupported) {
			return fmt.Errorf("%s %s: %w", doing, s.name, err)
		}
		s.l.Errorf(ctx, "section: %s %s failed: %v", doing, s.name, err)
		s.notifier.Notify(dialog.KindError, "Error", "Error: "+err.Error())
		return err
	}

	s.notifier.Notify(dialog.KindSuccess, "Success!", fmt.Sprintf("%s %s successfully", capitalize(s.name), done))
	s.reload(ctx)
	return nil
}

// reload failures are already reported by the controller's notifier.
func (s *Section[T, F]) reload(ctx context.Context) {
	_ = s.list.Reload(ctx)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
