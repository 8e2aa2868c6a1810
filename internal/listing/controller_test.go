package listing

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/soley/admin-cli/internal/dialog"
	"github.com/soley/admin-cli/internal/models"
)

type fakeBackend struct {
	mu    sync.Mutex
	items []string
	calls []models.ListParams
	err   error
}

func (b *fakeBackend) fetch(_ context.Context, p models.ListParams) (models.Page[string], error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, p)
	if b.err != nil {
		return models.Page[string]{}, b.err
	}

	var matched []string
	for _, it := range b.items {
		if strings.Contains(it, p.Search) {
			matched = append(matched, it)
		}
	}
	pages := (len(matched) + p.Limit - 1) / p.Limit
	start := (p.Page - 1) * p.Limit
	end := start + p.Limit
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}
	return models.Page[string]{
		Items: matched[start:end],
		Info:  models.PageInfo{CurrentPage: p.Page, TotalPages: pages, TotalItems: len(matched)},
	}, nil
}

func (b *fakeBackend) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func (b *fakeBackend) lastCall() models.ListParams {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[len(b.calls)-1]
}

type recordingNotifier struct {
	mu    sync.Mutex
	kinds []dialog.Kind
	msgs  []string
}

func (n *recordingNotifier) Notify(kind dialog.Kind, _, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.kinds = append(n.kinds, kind)
	n.msgs = append(n.msgs, message)
}

func orders(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "order-" + string(rune('a'+i%26))
	}
	return out
}

func TestMountLoadsFirstPage(t *testing.T) {
	b := &fakeBackend{items: orders(25)}
	c := New(b.fetch, WithPageSize(10))
	defer c.Close()

	if err := c.Mount(context.Background()); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	snap := c.Snapshot()
	if snap.State != Ready {
		t.Fatalf("state = %v, want ready", snap.State)
	}
	if len(snap.Items) != 10 {
		t.Errorf("len(items) = %d, want 10", len(snap.Items))
	}
	if snap.Info != (models.PageInfo{CurrentPage: 1, TotalPages: 3, TotalItems: 25}) {
		t.Errorf("info = %+v", snap.Info)
	}
	if got := b.lastCall(); got.Page != 1 || got.Limit != 10 || got.Search != "" {
		t.Errorf("fetch params = %+v", got)
	}
}

func TestNextStopsAtLastPage(t *testing.T) {
	b := &fakeBackend{items: orders(25)}
	c := New(b.fetch, WithPageSize(10))
	defer c.Close()
	ctx := context.Background()

	if err := c.Load(ctx, 2, ""); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := c.Next(ctx); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if got := c.Snapshot().Info.CurrentPage; got != 3 {
		t.Fatalf("current page = %d, want 3", got)
	}

	calls := b.callCount()
	if err := c.Next(ctx); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if b.callCount() != calls {
		t.Errorf("Next on last page issued a fetch")
	}
	if got := c.Snapshot().Info.CurrentPage; got != 3 {
		t.Errorf("current page = %d, want 3", got)
	}
}

func TestGoToPageOutOfRangeIsNoop(t *testing.T) {
	b := &fakeBackend{items: orders(25)}
	c := New(b.fetch, WithPageSize(10))
	defer c.Close()
	ctx := context.Background()

	if err := c.Mount(ctx); err != nil {
		t.Fatal(err)
	}
	calls := b.callCount()

	for _, n := range []int{0, -1, 4, 100} {
		if err := c.GoToPage(ctx, n); err != nil {
			t.Errorf("GoToPage(%d) error = %v", n, err)
		}
		if c.CanGoTo(n) {
			t.Errorf("CanGoTo(%d) = true", n)
		}
	}
	if b.callCount() != calls {
		t.Errorf("out-of-range pages issued %d fetches", b.callCount()-calls)
	}
	if err := c.Prev(ctx); err != nil || b.callCount() != calls {
		t.Errorf("Prev on page 1 should be a no-op")
	}
}

func TestLoadClampsPage(t *testing.T) {
	b := &fakeBackend{items: orders(5)}
	c := New(b.fetch)
	defer c.Close()

	if err := c.Load(context.Background(), 0, ""); err != nil {
		t.Fatal(err)
	}
	if got := b.lastCall().Page; got != 1 {
		t.Errorf("requested page = %d, want 1", got)
	}
}

func TestReloadIsIdempotent(t *testing.T) {
	b := &fakeBackend{items: orders(25)}
	c := New(b.fetch, WithPageSize(10))
	defer c.Close()
	ctx := context.Background()

	if err := c.Load(ctx, 2, "order"); err != nil {
		t.Fatal(err)
	}
	before := c.Snapshot()
	if err := c.Reload(ctx); err != nil {
		t.Fatal(err)
	}
	after := c.Snapshot()

	if before.Info != after.Info || before.Query != after.Query || len(before.Items) != len(after.Items) {
		t.Errorf("reload changed state: %+v -> %+v", before, after)
	}
	if got := b.lastCall(); got.Page != 2 || got.Search != "order" {
		t.Errorf("reload params = %+v", got)
	}
}

func TestFailureKeepsItemsAndNotifies(t *testing.T) {
	b := &fakeBackend{items: orders(5)}
	n := &recordingNotifier{}
	c := New(b.fetch, WithNotifier(n), WithTitle("orders"))
	defer c.Close()
	ctx := context.Background()

	if err := c.Mount(ctx); err != nil {
		t.Fatal(err)
	}

	b.mu.Lock()
	b.err = errors.New("Network error")
	b.mu.Unlock()

	if err := c.Reload(ctx); err == nil {
		t.Fatal("Reload() error = nil, want failure")
	}

	snap := c.Snapshot()
	if snap.State != Failed {
		t.Errorf("state = %v, want error", snap.State)
	}
	if len(snap.Items) != 5 {
		t.Errorf("items dropped on failure: %d", len(snap.Items))
	}
	if len(n.kinds) != 1 || n.kinds[0] != dialog.KindError {
		t.Fatalf("notifications = %v", n.kinds)
	}
	if n.msgs[0] != "Error loading orders: Network error" {
		t.Errorf("message = %q", n.msgs[0])
	}
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fetch := func(_ context.Context, p models.ListParams) (models.Page[string], error) {
		if p.Search == "slow" {
			close(started)
			<-release
		}
		return models.Page[string]{Items: []string{p.Search}}, nil
	}
	c := New(fetch)
	defer c.Close()
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- c.Load(ctx, 1, "slow") }()
	<-started

	if err := c.Load(ctx, 1, "fast"); err != nil {
		t.Fatal(err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("superseded Load() error = %v", err)
	}

	snap := c.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0] != "fast" {
		t.Errorf("items = %v, want [fast]", snap.Items)
	}
	if snap.Query != "fast" {
		t.Errorf("query = %q, want fast", snap.Query)
	}
}

func TestSearchBurstReloadsOnceAtPageOne(t *testing.T) {
	b := &fakeBackend{items: []string{"pizza margherita", "pizza diavola", "pasta"}}
	c := New(b.fetch, WithDebounce(30*time.Millisecond), WithPageSize(1))
	defer c.Close()
	ctx := context.Background()

	if err := c.Load(ctx, 2, ""); err != nil {
		t.Fatal(err)
	}
	calls := b.callCount()

	for _, s := range []string{"p", "pi", "piz", "pizz", "pizza"} {
		c.SetQuery(s)
		time.Sleep(5 * time.Millisecond)
	}
	if got := c.Snapshot().RawQuery; got != "pizza" {
		t.Errorf("raw query = %q, want pizza", got)
	}
	time.Sleep(150 * time.Millisecond)

	if got := b.callCount() - calls; got != 1 {
		t.Fatalf("fetches after burst = %d, want 1", got)
	}
	if got := b.lastCall(); got.Page != 1 || got.Search != "pizza" {
		t.Errorf("fetch params = %+v", got)
	}
	if got := c.Snapshot().Info.TotalItems; got != 2 {
		t.Errorf("total items = %d, want 2", got)
	}
}

func TestClearQueryResetsToFirstPage(t *testing.T) {
	b := &fakeBackend{items: orders(30)}
	c := New(b.fetch, WithDebounce(10*time.Millisecond), WithPageSize(10))
	defer c.Close()
	ctx := context.Background()

	c.SetQuery("order")
	c.FlushQuery()
	if err := c.GoToPage(ctx, 3); err != nil {
		t.Fatal(err)
	}

	c.ClearQuery()
	c.FlushQuery()

	got := b.lastCall()
	if got.Page != 1 || got.Search != "" {
		t.Errorf("fetch params after clear = %+v", got)
	}
	if snap := c.Snapshot(); snap.Query != "" || snap.Info.CurrentPage != 1 {
		t.Errorf("snapshot after clear = %+v", snap)
	}
}

func TestOnChangeSeesLoadingThenReady(t *testing.T) {
	b := &fakeBackend{items: orders(3)}
	var (
		mu     sync.Mutex
		states []State
	)
	c := New(b.fetch, WithOnChange(func(s Snapshot[string]) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, s.State)
	}))
	defer c.Close()

	if err := c.Mount(context.Background()); err != nil {
		t.Fatal(err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(states) != 2 || states[0] != Loading || states[1] != Ready {
		t.Errorf("states = %v, want [loading ready]", states)
	}
}
