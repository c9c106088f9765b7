package delay_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"go.inout.gg/passmeter/internal/delay"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAction(t *testing.T) {
	t.Parallel()

	t.Run("Replace should run the function after the delay", func(t *testing.T) {
		t.Parallel()

		var a delay.Action
		var called atomic.Int32

		a.Replace(10*time.Millisecond, func() { called.Add(1) })
		assert.True(t, a.Pending())

		assert.Eventually(t, func() bool { return called.Load() == 1 }, time.Second, 5*time.Millisecond)
		assert.False(t, a.Pending())
	})

	t.Run("Replace should keep only the last function", func(t *testing.T) {
		t.Parallel()

		var a delay.Action
		var called, last atomic.Int32

		for i := int32(1); i <= 5; i++ {
			a.Replace(30*time.Millisecond, func() {
				called.Add(1)
				last.Store(i)
			})
		}

		assert.Eventually(t, func() bool { return called.Load() == 1 }, time.Second, 5*time.Millisecond)
		time.Sleep(60 * time.Millisecond)

		assert.Equal(t, int32(1), called.Load())
		assert.Equal(t, int32(5), last.Load())
	})

	t.Run("Cancel should drop the pending function", func(t *testing.T) {
		t.Parallel()

		var a delay.Action
		var called atomic.Int32

		a.Replace(20*time.Millisecond, func() { called.Add(1) })
		a.Cancel()
		assert.False(t, a.Pending())

		time.Sleep(60 * time.Millisecond)
		assert.Equal(t, int32(0), called.Load())
	})

	t.Run("Cancel should be a no-op without a pending function", func(t *testing.T) {
		t.Parallel()

		var a delay.Action

		assert.NotPanics(t, a.Cancel)
		assert.False(t, a.Pending())
	})

	t.Run("function should be allowed to reschedule itself", func(t *testing.T) {
		t.Parallel()

		var a delay.Action
		var called atomic.Int32

		var fn func()
		fn = func() {
			if called.Add(1) < 3 {
				a.Replace(time.Millisecond, fn)
			}
		}

		a.Replace(time.Millisecond, fn)

		assert.Eventually(t, func() bool { return called.Load() == 3 }, time.Second, 5*time.Millisecond)
	})
}
