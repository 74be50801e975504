package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual_FiresOncePerInterval(t *testing.T) {
	m := NewManual()
	var n int
	m.Every(100*time.Millisecond, func() { n++ })

	m.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, n)
	m.Advance(time.Millisecond)
	assert.Equal(t, 1, n)
	m.Advance(time.Second)
	assert.Equal(t, 11, n)
	assert.Equal(t, 1100*time.Millisecond, m.Now())
}

func TestManual_CancelStopsFiring(t *testing.T) {
	m := NewManual()
	var n int
	cancel := m.Every(10*time.Millisecond, func() { n++ })
	m.Advance(30 * time.Millisecond)
	cancel()
	cancel()
	m.Advance(time.Second)
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, m.Pending())
}

func TestManual_CancelFromCallback(t *testing.T) {
	m := NewManual()
	var n int
	var cancel func()
	cancel = m.Every(10*time.Millisecond, func() {
		n++
		if n == 2 {
			cancel()
		}
	})
	m.Advance(time.Second)
	assert.Equal(t, 2, n)
}

func TestManual_InterleavesJobsInTimeOrder(t *testing.T) {
	m := NewManual()
	var order []string
	m.Every(20*time.Millisecond, func() { order = append(order, "slow") })
	m.Every(10*time.Millisecond, func() { order = append(order, "fast") })

	m.Advance(40 * time.Millisecond)
	assert.Equal(t, []string{"fast", "slow", "fast", "fast", "slow", "fast"}, order)
}

func TestManual_IgnoresNonPositiveInterval(t *testing.T) {
	m := NewManual()
	cancel := m.Every(0, func() { t.Fatal("must not fire") })
	m.Advance(time.Second)
	cancel()
	assert.Equal(t, 0, m.Pending())
}
