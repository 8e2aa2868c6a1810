// Package debounce holds a single text value that settles after a quiet window.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the quiet period used by search inputs.
const DefaultWindow = 500 * time.Millisecond

// Debouncer is a trailing-edge debouncer for one text field. Set records the
// raw value immediately; once no Set has happened for the window, the
// settled value becomes the latest raw value and fn is called once. A burst
// that ends where it started changes nothing and does not call fn.
type Debouncer struct {
	window time.Duration
	fn     func(string)

	mu      sync.Mutex
	raw     string
	value   string
	gen     uint64
	timer   *time.Timer
	pending bool
}

// New returns a Debouncer calling fn on settle. A non-positive window uses DefaultWindow.
func New(window time.Duration, fn func(string)) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window, fn: fn}
}

// Set records raw and restarts the quiet window.
func (d *Debouncer) Set(raw string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.raw = raw
	d.gen++
	gen := d.gen
	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
}

// fire runs on the timer goroutine; a timer from an older generation lost a race with Set.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	if d.raw == d.value {
		d.mu.Unlock()
		return
	}
	d.value = d.raw
	v := d.value
	d.mu.Unlock()

	if d.fn != nil {
		d.fn(v)
	}
}

// Flush settles a pending value now instead of waiting for the window.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	gen := d.gen
	d.mu.Unlock()
	d.fire(gen)
}

// Stop cancels a pending settle.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = false
	d.gen++
}

// Raw returns the latest value passed to Set.
func (d *Debouncer) Raw() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw
}

// Value returns the last settled value.
func (d *Debouncer) Value() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value
}

// Pending reports whether a settle is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
