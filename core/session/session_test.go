package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"asset-picker/core/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSession_AccessFlushesAndDrainsEvents(t *testing.T) {
	st := NewStore(0, zap.NewNop())
	s := st.Create()

	events, err := s.Access(func() error {
		s.Scheduler().BeforeResponse(func() { s.Emit("size", 3) })
		s.Emit("value", nil)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "value", events[0].Type)
	assert.Equal(t, "size", events[1].Type)
	assert.Equal(t, 3, events[1].Data)

	events, err = s.Access(func() error { return nil })
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestSession_AccessKeepsEventsOnError(t *testing.T) {
	st := NewStore(0, nil)
	s := st.Create()
	boom := errors.New("boom")

	events, err := s.Access(func() error {
		s.Scheduler().BeforeResponse(func() { s.Emit("size", 0) })
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, events)

	events, err = s.Access(func() error { return nil })
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestStore_GetDelete(t *testing.T) {
	st := NewStore(0, nil)
	s := st.Create()
	assert.NotEmpty(t, s.ID)

	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	closed := 0
	_, _ = s.Access(func() error {
		s.OnClose(func() { closed++ })
		return nil
	})

	require.NoError(t, st.Delete(s.ID))
	assert.Equal(t, 1, closed)
	assert.ErrorIs(t, st.Delete(s.ID), ErrNotFound)

	_, err = st.Get(s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Sweep(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	st := NewStore(time.Minute, nil)
	st.now = func() time.Time { return now }

	idle := st.Create()
	closed := false
	_, _ = idle.Access(func() error {
		idle.OnClose(func() { closed = true })
		return nil
	})

	now = now.Add(45 * time.Second)
	active := st.Create()

	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, st.Sweep())
	assert.True(t, closed)
	assert.Equal(t, 1, st.Len())

	_, err := st.Get(active.ID)
	assert.NoError(t, err)
	_, err = st.Get(idle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_SweepDisabled(t *testing.T) {
	st := NewStore(0, nil)
	st.Create()
	assert.Equal(t, 0, st.Sweep())
	assert.Equal(t, 1, st.Len())
}

func TestSession_BackgroundKeepsEvents(t *testing.T) {
	st := NewStore(0, nil)
	s := st.Create()

	s.Background(func() {
		s.Scheduler().BeforeResponse(func() { s.Emit("size", 1) })
	})

	events, err := s.Access(func() error { return nil })
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "size", events[0].Type)
}

func TestSession_BackgroundSkipsClosed(t *testing.T) {
	st := NewStore(0, nil)
	s := st.Create()
	require.NoError(t, st.Delete(s.ID))

	ran := false
	s.Background(func() { ran = true })
	assert.False(t, ran)
}

func TestProvider_DeliversUnderSession(t *testing.T) {
	st := NewStore(0, nil)
	s := st.Create()
	list := data.NewListProvider([]string{"a"})
	list.SetIdentifier(func(v string) any { return "id:" + v })

	p := Bind[string](s, list)
	assert.Equal(t, "id:a", p.ID("a"))

	got := 0
	reg := p.AddListener(func(context.Context, data.ChangeEvent[string]) {
		got++
		s.Emit("changed", nil)
	})
	list.Add(context.Background(), "b")
	assert.Equal(t, 1, got)

	events, err := s.Access(func() error { return nil })
	require.NoError(t, err)
	assert.Len(t, events, 1)

	var items []string
	for v, err := range p.Fetch(context.Background(), data.Query{}) {
		require.NoError(t, err)
		items = append(items, v)
	}
	assert.Equal(t, []string{"a", "b"}, items)

	reg.Remove()
	list.Add(context.Background(), "c")
	assert.Equal(t, 1, got)
}
