package roundtrip_test

import (
	"testing"

	"asset-picker/core/roundtrip"

	"github.com/stretchr/testify/assert"
)

func TestQueue_FlushRunsInOrder(t *testing.T) {
	q := roundtrip.NewQueue()
	var got []int
	q.BeforeResponse(func() { got = append(got, 1) })
	q.BeforeResponse(func() { got = append(got, 2) })

	assert.Equal(t, 2, q.Pending())
	assert.Empty(t, got)

	assert.Equal(t, 2, q.Flush())
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 0, q.Pending())
	assert.Equal(t, 0, q.Flush())
}

func TestQueue_TasksQueuedDuringFlushRun(t *testing.T) {
	q := roundtrip.NewQueue()
	var got []string
	q.BeforeResponse(func() {
		got = append(got, "outer")
		q.BeforeResponse(func() { got = append(got, "inner") })
	})

	assert.Equal(t, 2, q.Flush())
	assert.Equal(t, []string{"outer", "inner"}, got)
}

func TestDebouncer_OncePerRoundTrip(t *testing.T) {
	q := roundtrip.NewQueue()
	calls := 0
	d := roundtrip.NewDebouncer(q, func() { calls++ })

	d.Trigger()
	d.Trigger()
	d.Trigger()

	assert.True(t, d.Pending())
	assert.Equal(t, 1, q.Pending())
	assert.Equal(t, 0, calls)

	q.Flush()
	assert.Equal(t, 1, calls)
	assert.False(t, d.Pending())

	// Next round trip schedules again.
	d.Trigger()
	q.Flush()
	assert.Equal(t, 2, calls)
}

func TestDebouncer_TriggerFromFireRunsAgain(t *testing.T) {
	q := roundtrip.NewQueue()
	calls := 0
	var d *roundtrip.Debouncer
	d = roundtrip.NewDebouncer(q, func() {
		calls++
		if calls == 1 {
			d.Trigger()
		}
	})

	d.Trigger()
	q.Flush()

	assert.Equal(t, 2, calls)
}
