package toast

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSweeper_StartStop(t *testing.T) {
	var ticks atomic.Int32
	s := NewSweeper(2*time.Millisecond, func() bool {
		ticks.Add(1)
		return false
	}, nil)

	assert.False(t, s.Running())
	s.Start(context.Background())
	s.Start(context.Background())
	assert.True(t, s.Running())

	assert.Eventually(t, func() bool {
		return ticks.Load() >= 3
	}, time.Second, time.Millisecond)

	s.Stop()
	assert.False(t, s.Running())
	stopped := ticks.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load())

	s.Stop()
}

func TestSweeper_ContextCancel(t *testing.T) {
	s := NewSweeper(time.Millisecond, func() bool { return false }, nil)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()

	assert.Eventually(t, func() bool {
		return !s.Running()
	}, time.Second, time.Millisecond)

	// Restartable after the context ends.
	s.Start(context.Background())
	assert.True(t, s.Running())
	s.Stop()
}

func TestSweeper_DefaultInterval(t *testing.T) {
	s := NewSweeper(0, nil, nil)
	assert.Equal(t, DefaultSweepInterval, s.Interval())
}

func TestSweeper_SetInterval(t *testing.T) {
	var ticks atomic.Int32
	s := NewSweeper(time.Hour, func() bool {
		ticks.Add(1)
		return false
	}, nil)

	s.SetInterval(time.Minute)
	assert.Equal(t, time.Minute, s.Interval())
	assert.False(t, s.Running())

	s.Start(context.Background())
	s.SetInterval(2 * time.Millisecond)
	assert.True(t, s.Running())
	assert.Eventually(t, func() bool {
		return ticks.Load() >= 3
	}, time.Second, time.Millisecond)

	s.Stop()
	assert.False(t, s.Running())
	stopped := ticks.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load())
}
