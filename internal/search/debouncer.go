package search

import (
	"sync"
	"time"
)

// DefaultInterval is the quiet period after the last keystroke before a
// query settles.
const DefaultInterval = time.Second

// Timer is a pending scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler schedules f to run once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option customises a Debouncer.
type Option func(*Debouncer)

// WithScheduler replaces the time.AfterFunc based scheduler.
func WithScheduler(s Scheduler) Option {
	return func(d *Debouncer) {
		if s != nil {
			d.scheduler = s
		}
	}
}

// Debouncer turns raw keystroke input into a settled query using a
// trailing-edge debounce. There is no leading-edge firing.
type Debouncer struct {
	interval  time.Duration
	onSettled func(string)
	scheduler Scheduler

	// fireMu serialises a running onSettled with Stop.
	fireMu sync.Mutex

	mu      sync.Mutex
	raw     string
	settled string
	seq     uint64
	timer   Timer
	stopped bool
}

// New creates a Debouncer. A non-positive interval selects DefaultInterval.
// onSettled may be nil.
func New(interval time.Duration, onSettled func(string), opts ...Option) *Debouncer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	d := &Debouncer{
		interval:  interval,
		onSettled: onSettled,
		scheduler: realScheduler{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// OnInput records text as the raw query and restarts the quiet interval,
// cancelling any settle that is still pending.
func (d *Debouncer) OnInput(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.raw = text
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = d.scheduler.AfterFunc(d.interval, func() { d.fire(seq) })
}

func (d *Debouncer) fire(seq uint64) {
	d.fireMu.Lock()
	defer d.fireMu.Unlock()

	d.mu.Lock()
	if d.stopped || seq != d.seq {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	if d.raw == d.settled {
		d.mu.Unlock()
		return
	}
	d.settled = d.raw
	value := d.settled
	callback := d.onSettled
	d.mu.Unlock()

	if callback != nil {
		callback(value)
	}
}

// Raw returns the latest input.
func (d *Debouncer) Raw() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw
}

// Settled returns the last settled query.
func (d *Debouncer) Settled() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settled
}

// Pending reports whether the raw input has not settled yet.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw != d.settled
}

// Stop cancels any pending settle and waits for a running onSettled to
// return. No callback fires after Stop returns and further input is ignored.
// Stop must not be called from onSettled.
func (d *Debouncer) Stop() {
	d.fireMu.Lock()
	defer d.fireMu.Unlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
