// Package clock abstracts recurring scheduled work so the owner of a timer can
// acquire it on mount and release it on unmount, and tests can drive time by hand.
package clock

import (
	"sort"
	"time"
)

// Scheduler runs fn every d until the returned cancel func is called.
// Cancel is idempotent. Implementations deliver fn on the owner's event loop,
// never concurrently with other callbacks of the same scheduler.
type Scheduler interface {
	Every(d time.Duration, fn func()) (cancel func())
}

// Manual is a virtual clock. Time only moves when Advance is called, and due
// callbacks run synchronously on the caller's goroutine.
type Manual struct {
	now  time.Duration
	seq  int
	jobs map[int]*manualJob
}

type manualJob struct {
	id    int
	every time.Duration
	next  time.Duration
	fn    func()
}

// Ensure Manual implements Scheduler.
var _ Scheduler = (*Manual)(nil)

// NewManual returns a virtual clock at time zero.
func NewManual() *Manual {
	return &Manual{jobs: make(map[int]*manualJob)}
}

// Every implements Scheduler. Non-positive intervals are never scheduled.
func (m *Manual) Every(d time.Duration, fn func()) func() {
	if d <= 0 {
		return func() {}
	}
	m.seq++
	id := m.seq
	m.jobs[id] = &manualJob{id: id, every: d, next: m.now + d, fn: fn}
	return func() { delete(m.jobs, id) }
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of live jobs.
func (m *Manual) Pending() int {
	return len(m.jobs)
}

// Advance moves the clock forward by d, firing each due job once per elapsed
// interval in time order. Ties fire in registration order. A callback that
// cancels a job (its own or another) stops it from firing again.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		j := m.nextDue(target)
		if j == nil {
			break
		}
		m.now = j.next
		j.next += j.every
		j.fn()
	}
	m.now = target
}

func (m *Manual) nextDue(target time.Duration) *manualJob {
	due := make([]*manualJob, 0, len(m.jobs))
	for _, j := range m.jobs {
		if j.next <= target {
			due = append(due, j)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(a, b int) bool {
		if due[a].next != due[b].next {
			return due[a].next < due[b].next
		}
		return due[a].id < due[b].id
	})
	return due[0]
}
