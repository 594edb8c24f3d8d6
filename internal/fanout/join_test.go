package fanout

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestJoin_PreservesInputOrder(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	// Each task waits for its successor, so completion runs e, d, c, b, a.
	gates := make([]chan struct{}, len(items))
	for i := range gates {
		gates[i] = make(chan struct{})
	}

	var completion []int
	var mu sync.Mutex

	got, err := Map(context.Background(), items, func(_ context.Context, i int, s string) (string, error) {
		if i+1 < len(items) {
			<-gates[i+1]
		}
		mu.Lock()
		completion = append(completion, i)
		mu.Unlock()
		close(gates[i])
		return s + s, nil
	})
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"aa", "bb", "cc", "dd", "ee"}, got); diff != "" {
		t.Errorf("result order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{4, 3, 2, 1, 0}, completion)
}

func TestJoin_EmptyInput(t *testing.T) {
	var calls int32
	got, err := Map(context.Background(), nil, func(context.Context, int, int) (int, error) {
		atomic.AddInt32(&calls, 1)
		return 0, nil
	})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestJoin_NilTask(t *testing.T) {
	_, err := NewJoiner[int, int]().Join(context.Background(), []int{1}, nil)
	assert.ErrorIs(t, err, ErrNilTask)
}

func TestJoin_OneFailureFailsAll(t *testing.T) {
	boom := errors.New("boom")
	items := []int{0, 1, 2, 3}

	start := time.Now()
	got, err := Map(context.Background(), items, func(ctx context.Context, i int, _ int) (int, error) {
		if i == 2 {
			return 0, boom
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(5 * time.Second):
			return i, nil
		}
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "item 2 failed")
	assert.Nil(t, got, "no partial results")
	assert.Less(t, time.Since(start), 2*time.Second, "siblings are cancelled, not awaited")
}

func TestJoin_ParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Map(ctx, []int{1, 2, 3}, func(ctx context.Context, _ int, v int) (int, error) {
		return v, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJoin_MaxConcurrency(t *testing.T) {
	items := make([]int, 20)
	var inFlight, peak int32

	_, err := NewJoiner[int, int]().
		WithMaxConcurrency(3).
		Join(context.Background(), items, func(context.Context, int, int) (int, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return 0, nil
		})

	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestJoin_ProgressCallback(t *testing.T) {
	items := []int{1, 2, 3, 4}
	var mu sync.Mutex
	var seen []int

	_, err := NewJoiner[int, int]().
		WithProgressCallback(func(s ProgressSnapshot) {
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, 4, s.Total)
			seen = append(seen, s.Done)
		}).
		Join(context.Background(), items, func(_ context.Context, _ int, v int) (int, error) {
			return v, nil
		})

	require.NoError(t, err)
	assert.Len(t, seen, 4)
	assert.Contains(t, seen, 4)
}

func TestProgress(t *testing.T) {
	p := NewProgress(4)
	assert.Zero(t, p.PercentComplete())
	assert.False(t, p.IsComplete())

	p.Add(2)
	assert.InDelta(t, 50.0, p.PercentComplete(), 0.001)

	p.Add(2)
	assert.True(t, p.IsComplete())
	snap := p.Snapshot()
	assert.Equal(t, 4, snap.Done)
	assert.InDelta(t, 100.0, snap.PercentComplete, 0.001)
	assert.GreaterOrEqual(t, p.ElapsedTime(), time.Duration(0))

	assert.Zero(t, NewProgress(0).PercentComplete())
}
