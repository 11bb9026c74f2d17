package watcher

import (
	"slices"
	"sync"
	"time"
)

// Debouncer coalesces a burst of file events into one callback
type Debouncer interface {
	Trigger(file string)
	Stop()
}

type debouncer struct {
	quiet    time.Duration
	maxWait  time.Duration
	callback func(files []string)

	mu      sync.Mutex
	timer   *time.Timer
	pending []string
	started time.Time
	gen     uint64
	stopped bool
}

// NewDebouncer calls callback with the sorted, distinct files of a burst once
// quiet passes without a new trigger. A positive maxWait bounds how long a
// continuous burst can postpone the callback.
func NewDebouncer(quiet, maxWait time.Duration, callback func(files []string)) Debouncer {
	return &debouncer{
		quiet:    quiet,
		maxWait:  maxWait,
		callback: callback,
	}
}

// Trigger adds file to the current burst and re-arms the timer
func (d *debouncer) Trigger(file string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if len(d.pending) == 0 {
		d.started = time.Now()
	}

	if i, found := slices.BinarySearch(d.pending, file); !found {
		d.pending = slices.Insert(d.pending, i, file)
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.wait(), func() { d.flush(gen) })
}

// wait is the quiet period, shortened so the burst never outlives maxWait
func (d *debouncer) wait() time.Duration {
	if d.maxWait <= 0 {
		return d.quiet
	}

	left := d.maxWait - time.Since(d.started)

	return max(min(d.quiet, left), 0)
}

// Stop drops the pending burst, later triggers are ignored
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = nil
	d.gen++

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// flush hands the burst to the callback unless a newer trigger re-armed the timer
func (d *debouncer) flush(gen uint64) {
	d.mu.Lock()

	if d.stopped || gen != d.gen || len(d.pending) == 0 {
		d.mu.Unlock()
		return
	}

	files := d.pending
	d.pending = nil
	d.timer = nil

	d.mu.Unlock()

	d.callback(files)
}
