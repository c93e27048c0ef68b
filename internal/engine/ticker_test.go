package engine_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/tartampluch/go-toolbox/internal/engine"
	"go.uber.org/goleak"
)

// steppingClock advances by one second on every reading.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(time.Second)
	return t
}

func TestTicker_RecomputesUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	start := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	clock := &steppingClock{now: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)}

	ctx, cancel := context.WithCancel(context.Background())
	var (
		mu      sync.Mutex
		results []engine.Difference
	)

	ticker := engine.NewTicker(clock, start, 5*time.Millisecond, func(d engine.Difference, _ time.Time, err error) {
		assert.NoError(t, err)
		mu.Lock()
		defer mu.Unlock()
		results = append(results, d)
		if len(results) == 3 {
			cancel()
		}
	})

	done := make(chan struct{})
	go func() {
		ticker.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker did not stop after cancellation")
	}

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(results), 3)

	// Each tick reads a fresh instant: one second more elapsed every time.
	assert.Equal(t, int64(1000), results[1].AbsoluteMillis-results[0].AbsoluteMillis)
	assert.Equal(t, int64(1000), results[2].AbsoluteMillis-results[1].AbsoluteMillis)
	assert.Equal(t, 25, results[0].Years)
}

func TestTicker_ReportsInvalidRange(t *testing.T) {
	defer goleak.VerifyNone(t)

	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 1)

	ctx, cancel := context.WithCancel(context.Background())
	var gotErr atomic.Value

	ticker := engine.NewTicker(engine.FixedClock{At: now}, future, time.Hour, func(_ engine.Difference, _ time.Time, err error) {
		gotErr.Store(err)
		cancel()
	})
	ticker.Run(ctx)

	err, _ := gotErr.Load().(error)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrInvalidRange)
}

func TestNewTicker_Defaults(t *testing.T) {
	ticker := engine.NewTicker(nil, time.Time{}, 0, nil)

	assert.IsType(t, engine.RealClock{}, ticker.Clock)
	assert.Equal(t, config.DefaultLiveInterval, ticker.Interval)

	// A nil callback must not panic.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ticker.Run(ctx)
}
