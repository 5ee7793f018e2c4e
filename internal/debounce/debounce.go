// Package debounce tracks a single cancellable delayed action.
//
// A Debouncer does not own a timer. Schedule hands out a Ticket describing
// what should run and after how long; the caller arranges for the ticket to
// come back once the delay has elapsed (in the TUI, via tea.Tick) and asks
// Fire whether it is still the latest one. Every Schedule or Cancel
// invalidates all tickets issued before it, so only the last request made
// inside a quiet period ever fires.
package debounce

import "time"

// Ticket is the handle for one scheduled action
type Ticket struct {
	Seq   uint64
	Key   string
	Delay time.Duration
}

// Debouncer issues and validates tickets. The zero value has no delay.
type Debouncer struct {
	delay time.Duration
	seq   uint64
}

// New creates a debouncer with a fixed delay
func New(delay time.Duration) Debouncer {
	if delay < 0 {
		delay = 0
	}
	return Debouncer{delay: delay}
}

// Delay returns the configured quiet period
func (d Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule invalidates any outstanding ticket and returns a new one for key
func (d *Debouncer) Schedule(key string) Ticket {
	d.seq++
	return Ticket{Seq: d.seq, Key: key, Delay: d.delay}
}

// Cancel invalidates any outstanding ticket
func (d *Debouncer) Cancel() {
	d.seq++
}

// Fire reports whether t is the most recently scheduled ticket and has not
// been cancelled. A ticket fires at most once.
func (d *Debouncer) Fire(t Ticket) bool {
	if t.Seq == 0 || t.Seq != d.seq {
		return false
	}
	d.seq++
	return true
}

// Pending reports whether t is still the live ticket
func (d Debouncer) Pending(t Ticket) bool {
	return t.Seq != 0 && t.Seq == d.seq
}
