package session_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/model"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/session"
)

func record(id int64) model.TranslationRecord {
	return model.TranslationRecord{ID: id, OriginalText: fmt.Sprintf("text %d", id)}
}

func TestHistory_AppendThenRecentOne(t *testing.T) {
	h := session.NewHistory()
	for i := int64(1); i <= 3; i++ {
		h.Append(record(i))
		got := h.Recent(1)
		require.Len(t, got, 1)
		require.Equal(t, record(i), got[0])
	}
}

func TestHistory_RecentBoundsAndOrder(t *testing.T) {
	h := session.NewHistory()
	require.Empty(t, h.Recent(5))

	for i := int64(1); i <= 7; i++ {
		h.Append(record(i))
	}
	require.Equal(t, 7, h.Len())

	tests := []struct {
		n    int
		want []int64
	}{
		{n: 0, want: nil},
		{n: 1, want: []int64{7}},
		{n: 5, want: []int64{3, 4, 5, 6, 7}},
		{n: 7, want: []int64{1, 2, 3, 4, 5, 6, 7}},
		{n: 50, want: []int64{1, 2, 3, 4, 5, 6, 7}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			got := h.Recent(tt.n)
			require.LessOrEqual(t, len(got), tt.n)
			ids := make([]int64, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			if tt.want == nil {
				require.Empty(t, ids)
				return
			}
			require.Equal(t, tt.want, ids)
		})
	}
	require.Equal(t, 7, h.Len())
}

func TestHistory_RecentReturnsCopy(t *testing.T) {
	h := session.NewHistory()
	h.Append(record(1))
	got := h.Recent(1)
	got[0].OriginalText = "changed"

	again, ok := h.Find(1)
	require.True(t, ok)
	require.Equal(t, "text 1", again.OriginalText)

	_, ok = h.Find(99)
	require.False(t, ok)
}

func TestHistory_ConcurrentAppend(t *testing.T) {
	h := session.NewHistory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h.Append(record(int64(i)))
		}(i)
	}
	wg.Wait()
	require.Equal(t, 50, h.Len())
}

func TestConversation_TurnMachine(t *testing.T) {
	var c session.Conversation
	require.False(t, c.Active())

	_, _, err := c.Expect(1)
	require.ErrorIs(t, err, session.ErrConversationInactive)

	c.Start("en", "hi")
	require.Equal(t, session.Speaker1Turn, c.Turn)

	src, dst, err := c.Expect(1)
	require.NoError(t, err)
	require.Equal(t, "en", src)
	require.Equal(t, "hi", dst)

	_, _, err = c.Expect(2)
	require.ErrorIs(t, err, session.ErrOutOfTurn)
	_, _, err = c.Expect(3)
	require.ErrorIs(t, err, session.ErrInvalidSpeaker)

	c.Advance()
	require.Equal(t, session.Speaker2Turn, c.Turn)
	src, dst, err = c.Expect(2)
	require.NoError(t, err)
	require.Equal(t, "hi", src)
	require.Equal(t, "en", dst)

	c.Advance()
	require.Equal(t, session.Speaker1Turn, c.Turn)
	require.Equal(t, 2, c.Exchanges)

	c.Stop()
	require.False(t, c.Active())
	c.Advance()
	require.Equal(t, session.Inactive, c.Turn)
	require.Equal(t, 2, c.Exchanges)
}

func TestSession_Defaults(t *testing.T) {
	m := session.NewManager(model.ThemeDark)
	s := m.Create()
	require.NotEmpty(t, s.ID)
	require.Equal(t, model.ThemeDark, s.Theme())
	require.Zero(t, s.History().Len())
	require.False(t, s.Conversation().Active())

	s.SetTheme(model.ThemeLight)
	require.Equal(t, model.ThemeLight, s.Theme())

	c := s.UpdateConversation(func(c *session.Conversation) { c.Start("ta", "te") })
	require.Equal(t, session.Speaker1Turn, c.Turn)
	require.Equal(t, "ta", s.Conversation().Language1)
}

func TestManager_IsolatedHistories(t *testing.T) {
	m := session.NewManager("")
	a := m.Create()
	b := m.Create()
	require.NotEqual(t, a.ID, b.ID)

	a.History().Append(record(1))
	require.Equal(t, 1, a.History().Len())
	require.Zero(t, b.History().Len())
}

func TestManager_GetOrCreateAndEnd(t *testing.T) {
	m := session.NewManager("")

	s, created := m.GetOrCreate("")
	require.True(t, created)

	again, created := m.GetOrCreate(s.ID)
	require.False(t, created)
	require.Same(t, s, again)

	_, created = m.GetOrCreate("unknown")
	require.True(t, created)
	require.Equal(t, 2, m.Len())

	require.True(t, m.End(s.ID))
	require.False(t, m.End(s.ID))
	_, ok := m.Get(s.ID)
	require.False(t, ok)
}

func TestManager_EvictIdle(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m := session.NewManager("")
	m.SetClock(func() time.Time { return now })

	stale := m.Create()
	fresh := m.Create()

	now = now.Add(90 * time.Minute)
	_, ok := m.Get(fresh.ID)
	require.True(t, ok)

	now = now.Add(45 * time.Minute)
	require.Equal(t, 1, m.EvictIdle(time.Hour))

	_, ok = m.Get(stale.ID)
	require.False(t, ok)
	_, ok = m.Get(fresh.ID)
	require.True(t, ok)
}
