package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"toybox/internal/clock"
)

// scheduledTickMsg fires one period of a recurring job.
type scheduledTickMsg struct {
	id int
	at time.Time
}

type scheduledJob struct {
	every time.Duration
	fn    func()
}

// teaScheduler runs clock.Scheduler jobs on the Bubble Tea event loop.
// Every queues a tea.Tick; the caller drains queued commands with Flush.
// A tick whose job was cancelled is dropped, so cancellation is immediate
// even though a tick may already be in flight.
type teaScheduler struct {
	jobs    map[int]scheduledJob
	nextID  int
	pending []tea.Cmd
}

var _ clock.Scheduler = (*teaScheduler)(nil)

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{jobs: make(map[int]scheduledJob)}
}

// Every implements clock.Scheduler.
func (s *teaScheduler) Every(d time.Duration, fn func()) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.jobs[id] = scheduledJob{every: d, fn: fn}
	s.pending = append(s.pending, s.tick(id, d))
	return func() { delete(s.jobs, id) }
}

// Flush returns the commands queued since the last call.
func (s *teaScheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Fire runs the job for msg and re-arms it. Returns nil for cancelled jobs.
func (s *teaScheduler) Fire(msg scheduledTickMsg) tea.Cmd {
	job, ok := s.jobs[msg.id]
	if !ok {
		return nil
	}
	job.fn()
	// fn may have cancelled its own job.
	if _, ok := s.jobs[msg.id]; !ok {
		return nil
	}
	return s.tick(msg.id, job.every)
}

// Active returns the number of live jobs.
func (s *teaScheduler) Active() int {
	return len(s.jobs)
}

func (s *teaScheduler) tick(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return scheduledTickMsg{id: id, at: t}
	})
}
