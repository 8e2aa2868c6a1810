package debounce

import (
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) fn(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func TestBurstSettlesOnceWithFinalValue(t *testing.T) {
	rec := &recorder{}
	d := New(50*time.Millisecond, rec.fn)

	for _, v := range []string{"v", "ve", "veg", "veg ", "veg b"} {
		d.Set(v)
		time.Sleep(5 * time.Millisecond)
	}

	if got := d.Raw(); got != "veg b" {
		t.Fatalf("Raw() = %q, want immediate update", got)
	}
	if got := d.Value(); got != "" {
		t.Fatalf("Value() = %q before window elapsed", got)
	}

	time.Sleep(200 * time.Millisecond)

	calls := rec.snapshot()
	if len(calls) != 1 {
		t.Fatalf("expected exactly one settle, got %d: %v", len(calls), calls)
	}
	if calls[0] != "veg b" {
		t.Errorf("settled with %q, want final value", calls[0])
	}
	if d.Value() != "veg b" {
		t.Errorf("Value() = %q", d.Value())
	}
}

func TestKeystrokeRestartsWindow(t *testing.T) {
	rec := &recorder{}
	d := New(80*time.Millisecond, rec.fn)

	d.Set("a")
	time.Sleep(50 * time.Millisecond)
	d.Set("ab")
	time.Sleep(50 * time.Millisecond)

	if n := len(rec.snapshot()); n != 0 {
		t.Fatalf("fired after %d calls before quiet window", n)
	}

	time.Sleep(150 * time.Millisecond)
	if calls := rec.snapshot(); len(calls) != 1 || calls[0] != "ab" {
		t.Fatalf("calls = %v", calls)
	}
}

func TestSeparateBurstsFireSeparately(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, rec.fn)

	d.Set("pizza")
	time.Sleep(120 * time.Millisecond)
	d.Set("")
	time.Sleep(120 * time.Millisecond)

	calls := rec.snapshot()
	if len(calls) != 2 || calls[0] != "pizza" || calls[1] != "" {
		t.Fatalf("calls = %q", calls)
	}
}

func TestFlushAndStop(t *testing.T) {
	rec := &recorder{}
	d := New(time.Hour, rec.fn)

	d.Set("now")
	d.Flush()
	if calls := rec.snapshot(); len(calls) != 1 || calls[0] != "now" {
		t.Fatalf("Flush calls = %v", calls)
	}

	d.Flush()
	if n := len(rec.snapshot()); n != 1 {
		t.Fatalf("Flush with nothing pending fired again")
	}

	d.Set("later")
	d.Stop()
	if d.Pending() {
		t.Fatal("Stop left a pending settle")
	}
	d.Flush()
	if n := len(rec.snapshot()); n != 1 {
		t.Fatalf("stopped value settled")
	}
}

func TestBurstEndingAtSettledValueDoesNotFire(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, rec.fn)

	d.Set("a")
	d.Set("")
	time.Sleep(120 * time.Millisecond)

	if calls := rec.snapshot(); len(calls) != 0 {
		t.Fatalf("unchanged value settled: %q", calls)
	}
}
