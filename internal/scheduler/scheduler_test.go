package scheduler_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/model"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/scheduler"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/session"
)

type countingEvictor struct {
	calls atomic.Int32
	ttl   atomic.Int64
}

func (e *countingEvictor) EvictIdle(ttl time.Duration) int {
	e.calls.Add(1)
	e.ttl.Store(int64(ttl))
	return 0
}

func TestScheduler_SweepsUntilStopped(t *testing.T) {
	ev := &countingEvictor{}
	s := scheduler.New(ev, time.Hour, 5*time.Millisecond)
	s.Start()

	require.Eventually(t, func() bool { return ev.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()
	s.Stop()

	after := ev.calls.Load()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, after, ev.calls.Load())
	require.Equal(t, int64(time.Hour), ev.ttl.Load())
}

func TestScheduler_EvictsIdleSessions(t *testing.T) {
	m := session.NewManager(model.ThemeLight)
	m.Create()

	s := scheduler.New(m, time.Nanosecond, 5*time.Millisecond)
	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 5*time.Millisecond)
}
