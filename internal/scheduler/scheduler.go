package scheduler

import (
	"sync"
	"time"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/logger"
)

// Evictor discards sessions idle for longer than ttl.
type Evictor interface {
	EvictIdle(ttl time.Duration) int
}

// Scheduler periodically evicts idle sessions.
type Scheduler struct {
	sessions Evictor
	ttl      time.Duration
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a janitor that sweeps every interval. A zero interval sweeps
// at a tenth of the TTL, but at least once a minute.
func New(sessions Evictor, ttl, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = ttl / 10
		if interval <= 0 || interval > time.Minute {
			interval = time.Minute
		}
	}
	return &Scheduler{
		sessions: sessions,
		ttl:      ttl,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "evict", "resource", "session", "result", "ok", "interval_ms", s.interval.Milliseconds(), "ttl_ms", s.ttl.Milliseconds())
}

func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "evict", "resource", "session", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) sweep() {
	if n := s.sessions.EvictIdle(s.ttl); n > 0 {
		logger.Info("idle sessions evicted", "module", "scheduler", "action", "evict", "resource", "session", "result", "ok", "count", n)
	}
}
