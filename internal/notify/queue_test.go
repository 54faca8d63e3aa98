package notify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueExecutesInDispatchOrder(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	defer q.Close()

	var mu sync.Mutex
	var got []int
	for i := 0; i < 50; i++ {
		i := i
		q.Dispatch(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
	}
	q.Sync()

	require.Len(t, got, 50)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestQueueSyncWaitsForBacklog(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	defer q.Close()

	done := false
	q.Dispatch(func() { done = true })
	q.Sync()

	require.True(t, done)
}

func TestQueueDeliveriesAreSerial(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	defer q.Close()

	// No data race even without a lock: only the delivery goroutine runs fns.
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Dispatch(func() { counter++ })
			}
		}()
	}
	wg.Wait()
	q.Sync()

	require.Equal(t, 1000, counter)
}

func TestQueueDropsDispatchAfterClose(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	q.Close()

	ran := false
	q.Dispatch(func() { ran = true })
	q.Sync() // returns immediately on a closed queue

	require.False(t, ran)
}

func TestQueueCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	q.Close()
	q.Close()
}

func TestQueueIgnoresNilDispatch(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	defer q.Close()

	q.Dispatch(nil)
	q.Sync()
}
