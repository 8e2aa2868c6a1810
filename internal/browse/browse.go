// Package browse drives a resource section from a line-oriented terminal:
// typed text searches, colon commands page, reload and delete.
package browse

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/soley/admin-cli/internal/forms"
	"github.com/soley/admin-cli/internal/listing"
	"github.com/soley/admin-cli/internal/section"
	"github.com/soley/admin-cli/pkg/log"
)

const prompt = "> "

const help = `Type to search, or:
  :n / :p     next / previous page
  :g N        go to page N
  :r          reload
  :clear      clear the search
  :d ID       delete a record
  :q          quit
`

// Options configures Run. In should be shared with any terminal confirmer so
// both read from one buffer.
type Options struct {
	In     *bufio.Reader
	Out    io.Writer
	Colors bool
	Logger log.Logger
}

// session serializes writes to Out between the input loop and debounced loads.
type session[T any, F forms.Form] struct {
	s      *section.Section[T, F]
	out    io.Writer
	colors bool
	l      log.Logger

	mu   sync.Mutex
	prev listing.State
}

// Run mounts s and processes commands until ":q", EOF or ctx cancellation.
func Run[T any, F forms.Form](ctx context.Context, s *section.Section[T, F], o Options) error {
	if o.Logger == nil {
		o.Logger = log.NewNop()
	}
	b := &session[T, F]{s: s, out: o.Out, colors: o.Colors, l: o.Logger}

	s.List().OnChange(b.changed)
	defer s.Close()

	b.write("Browsing %s. :h for help.\n", s.Plural())
	// failures were already notified; the loop keeps going with an empty table
	_ = s.Mount(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := o.In.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				b.write("\n")
				return nil
			}
			return err
		}
		if quit := b.handle(ctx, strings.TrimRight(line, "\r\n")); quit {
			return nil
		}
	}
}

// changed re-renders when a load settles.
func (b *session[T, F]) changed(snap listing.Snapshot[T]) {
	b.mu.Lock()
	prev := b.prev
	b.prev = snap.State
	b.mu.Unlock()

	if prev == listing.Loading && (snap.State == listing.Ready || snap.State == listing.Failed) {
		b.render()
	}
}

func (b *session[T, F]) render() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.s.Render(b.out, b.colors); err != nil {
		b.l.Errorf(context.Background(), "browse: render %s: %v", b.s.Plural(), err)
	}
	fmt.Fprint(b.out, prompt)
}

func (b *session[T, F]) write(format string, args ...any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintf(b.out, format, args...)
}

// handle runs one input line and reports whether the loop should stop.
func (b *session[T, F]) handle(ctx context.Context, line string) bool {
	trimmed := strings.TrimSpace(line)
	list := b.s.List()

	if !strings.HasPrefix(trimmed, ":") {
		if trimmed == "" {
			b.write(prompt)
			return false
		}
		list.SetQuery(line)
		return false
	}

	cmd, arg, _ := strings.Cut(trimmed[1:], " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "q", "quit":
		return true
	case "h", "help":
		b.write("%s%s", help, prompt)
	case "clear":
		list.ClearQuery()
		list.FlushQuery()
	case "n", "next":
		b.page(ctx, list.Snapshot().Info.CurrentPage+1)
	case "p", "prev":
		b.page(ctx, list.Snapshot().Info.CurrentPage-1)
	case "g", "go":
		n, err := strconv.Atoi(arg)
		if err != nil {
			b.write("Invalid page %q\n%s", arg, prompt)
			return false
		}
		b.page(ctx, n)
	case "r", "reload":
		_ = list.Reload(ctx)
	case "d", "delete":
		if arg == "" {
			b.write("Usage: :d ID\n%s", prompt)
			return false
		}
		if err := b.s.Delete(ctx, arg); err != nil {
			switch {
			case errors.Is(err, section.ErrCancelled):
				b.write("Cancelled\n")
			case errors.Is(err, section.ErrUnsupported):
				b.write("%v\n", err)
			}
			b.write(prompt)
		}
	default:
		b.write("Unknown command :%s\n%s", cmd, prompt)
	}
	return false
}

func (b *session[T, F]) page(ctx context.Context, n int) {
	list := b.s.List()
	if !list.CanGoTo(n) {
		b.write("No page %d\n%s", n, prompt)
		return
	}
	_ = list.GoToPage(ctx, n)
}
