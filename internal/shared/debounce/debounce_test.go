package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleCoalesces(t *testing.T) {
	d := New[string](30 * time.Millisecond)
	defer d.Stop()

	var runs atomic.Int32
	for i := 0; i < 10; i++ {
		d.Schedule("k", func() { runs.Add(1) })
	}

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load(), "repeats must collapse into one run")
}

func TestKeysAreIndependent(t *testing.T) {
	d := New[string](20 * time.Millisecond)
	defer d.Stop()

	var a, b atomic.Int32
	d.Schedule("a", func() { a.Add(1) })
	d.Schedule("b", func() { b.Add(1) })
	// Rescheduling "a" must not touch "b".
	d.Schedule("a", func() { a.Add(1) })

	assert.Eventually(t, func() bool {
		return a.Load() == 1 && b.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestCancel(t *testing.T) {
	d := New[string](20 * time.Millisecond)
	defer d.Stop()

	var runs atomic.Int32
	d.Schedule("k", func() { runs.Add(1) })

	assert.True(t, d.Cancel("k"))
	assert.False(t, d.Cancel("k"), "second cancel finds nothing")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
}

func TestFlushRunsNow(t *testing.T) {
	d := New[string](time.Hour)
	defer d.Stop()

	var runs atomic.Int32
	d.Schedule("a", func() { runs.Add(1) })
	d.Schedule("b", func() { runs.Add(1) })

	d.Flush()
	assert.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, d.Len())
}

func TestStopDropsPending(t *testing.T) {
	d := New[string](20 * time.Millisecond)

	var runs atomic.Int32
	d.Schedule("k", func() { runs.Add(1) })
	d.Stop()

	// Schedule after Stop is a no-op.
	d.Schedule("k", func() { runs.Add(1) })

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
	assert.Equal(t, 0, d.Len())
}
