package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeaScheduler_EveryQueuesTick(t *testing.T) {
	s := newTeaScheduler()
	assert.Nil(t, s.Flush(), "nothing queued yet")

	s.Every(time.Millisecond, func() {})
	assert.Equal(t, 1, s.Active())

	cmd := s.Flush()
	require.NotNil(t, cmd)
	msg, ok := cmd().(scheduledTickMsg)
	require.True(t, ok)
	assert.Equal(t, 1, msg.id)
	assert.Nil(t, s.Flush(), "flush drains the queue")
}

func TestTeaScheduler_FireRunsAndRearms(t *testing.T) {
	s := newTeaScheduler()
	calls := 0
	s.Every(time.Millisecond, func() { calls++ })
	s.Flush()

	next := s.Fire(scheduledTickMsg{id: 1})
	assert.Equal(t, 1, calls)
	require.NotNil(t, next)
	_, ok := next().(scheduledTickMsg)
	assert.True(t, ok)
}

func TestTeaScheduler_CancelledTickDropped(t *testing.T) {
	s := newTeaScheduler()
	calls := 0
	cancel := s.Every(time.Millisecond, func() { calls++ })
	cancel()

	assert.Nil(t, s.Fire(scheduledTickMsg{id: 1}))
	assert.Zero(t, calls)
	assert.Zero(t, s.Active())
	assert.Nil(t, s.Fire(scheduledTickMsg{id: 42}), "unknown job")
}

func TestTeaScheduler_JobCancellingItself(t *testing.T) {
	s := newTeaScheduler()
	var cancel func()
	cancel = s.Every(time.Millisecond, func() { cancel() })

	assert.Nil(t, s.Fire(scheduledTickMsg{id: 1}))
	assert.Zero(t, s.Active())
}
