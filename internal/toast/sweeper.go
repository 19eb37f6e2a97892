package toast

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultSweepInterval is how often expired toasts are looked for.
const DefaultSweepInterval = 100 * time.Millisecond

// Sweeper calls a sweep function on a fixed interval until stopped.
type Sweeper struct {
	mu     sync.Mutex
	logger *slog.Logger

	interval time.Duration
	sweep    func() bool

	ctx    context.Context
	stopCh chan struct{}
	doneCh chan struct{}

	running bool
}

// NewSweeper creates a stopped sweeper. A non-positive interval falls back
// to DefaultSweepInterval.
func NewSweeper(interval time.Duration, sweep func() bool, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{
		logger:   logger,
		interval: interval,
		sweep:    sweep,
	}
}

// Interval returns the tick interval.
func (s *Sweeper) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// SetInterval changes the tick interval. A running sweeper restarts its
// loop on the new interval. A non-positive interval falls back to
// DefaultSweepInterval.
func (s *Sweeper) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	s.mu.Lock()
	if interval == s.interval {
		s.mu.Unlock()
		return
	}
	s.interval = interval
	if !s.running {
		s.mu.Unlock()
		return
	}
	close(s.stopCh)
	prev := s.doneCh
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	go s.loop(s.ctx, interval, s.stopCh, s.doneCh)
	s.mu.Unlock()

	<-prev
	s.logger.Debug("toast sweeper interval changed", "interval", interval)
}

// Start begins sweeping. Calling Start on a running sweeper is a no-op.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.ctx = ctx
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.loop(ctx, s.interval, s.stopCh, s.doneCh)

	s.logger.Debug("toast sweeper started", "interval", s.interval)
}

// Stop halts sweeping and waits for the loop to exit.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	done := s.doneCh
	s.mu.Unlock()

	<-done
	s.logger.Debug("toast sweeper stopped")
}

// Running reports whether the sweep loop is active.
func (s *Sweeper) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Sweeper) loop(ctx context.Context, interval time.Duration, stopCh chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			if s.stopCh == stopCh {
				s.running = false
			}
			s.mu.Unlock()
			return
		case <-stopCh:
			return
		case <-ticker.C:
			if s.sweep != nil && s.sweep() {
				s.logger.Debug("toast sweep removed expired toasts")
			}
		}
	}
}
