package inflight_test

import (
	"sync"
	"testing"

	"epicerie/internal/pkg/inflight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_TryAcquire(t *testing.T) {
	t.Run("second acquire on the same key fails", func(t *testing.T) {
		guard := inflight.NewGuard()

		require.True(t, guard.TryAcquire("order:7"))
		assert.False(t, guard.TryAcquire("order:7"))
	})

	t.Run("different keys are independent", func(t *testing.T) {
		guard := inflight.NewGuard()

		require.True(t, guard.TryAcquire("order:7"))
		assert.True(t, guard.TryAcquire("order:8"))
	})

	t.Run("release makes the key acquirable again", func(t *testing.T) {
		guard := inflight.NewGuard()

		require.True(t, guard.TryAcquire("order:7"))
		guard.Release("order:7")
		assert.True(t, guard.TryAcquire("order:7"))
	})

	t.Run("releasing an unheld key is a no-op", func(t *testing.T) {
		guard := inflight.NewGuard()
		guard.Release("order:7")
		assert.True(t, guard.TryAcquire("order:7"))
	})
}

func TestGuard_ConcurrentAcquire(t *testing.T) {
	guard := inflight.NewGuard()

	const attempts = 64
	var wg sync.WaitGroup
	wins := make(chan struct{}, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if guard.TryAcquire("order:7") {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	assert.Len(t, wins, 1, "exactly one goroutine may hold the key")
}
