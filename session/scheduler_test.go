package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerFiresAfterDelay(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(0.1, func() { fired++ })

	s.Update(0.05)
	assert.Equal(t, 0, fired)
	assert.Equal(t, 1, s.Pending())

	s.Update(0.05)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, s.Pending())

	s.Update(1)
	assert.Equal(t, 1, fired)
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	h := s.After(0.1, func() { fired = true })

	assert.True(t, s.Cancel(h))
	assert.False(t, s.Cancel(h))
	assert.False(t, s.Cancel(nil))

	s.Update(1)
	assert.False(t, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestSchedulerCancelAfterFire(t *testing.T) {
	s := NewScheduler()
	h := s.After(0.1, func() {})
	s.Update(0.2)

	assert.False(t, s.Cancel(h))
}

func TestSchedulerRescheduleFromCallback(t *testing.T) {
	s := NewScheduler()
	fired := 0
	var again func()
	again = func() {
		fired++
		s.After(0.1, again)
	}
	s.After(0.1, again)

	// the callback scheduled inside Update must wait for the next one
	s.Update(10)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, s.Pending())

	s.Update(0.1)
	assert.Equal(t, 2, fired)
	assert.Equal(t, 1, s.Pending())
}

func TestSchedulerIndependentTimers(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(0.3, func() { order = append(order, "slow") })
	s.After(0.1, func() { order = append(order, "fast") })

	s.Update(0.1)
	assert.Equal(t, []string{"fast"}, order)

	s.Update(0.5)
	assert.Equal(t, []string{"fast", "slow"}, order)
}
