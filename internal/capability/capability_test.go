package capability

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLoadedIsMemoized(t *testing.T) {
	var calls atomic.Int32
	p := New("spinner", func(context.Context) (string, error) {
		calls.Add(1)
		return "handle", nil
	})

	first := p.Resolve(context.Background())
	second := p.Resolve(context.Background())

	require.True(t, first.OK())
	assert.Equal(t, "handle", first.Handle)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestResolveUnavailableRetries(t *testing.T) {
	var calls atomic.Int32
	p := New("color", func(context.Context) (bool, error) {
		if calls.Add(1) == 1 {
			return false, ErrColorDisabled
		}
		return true, nil
	})

	first := p.Resolve(context.Background())
	assert.Equal(t, Unavailable, first.Status)
	assert.ErrorIs(t, first.Err, ErrColorDisabled)

	second := p.Resolve(context.Background())
	assert.True(t, second.OK())
	assert.Equal(t, int32(2), calls.Load())
}

func TestResolveConcurrentCallersShareProbe(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	p := New("spinner", func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 7, nil
	})

	var wg sync.WaitGroup
	results := make([]Result[int], 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.Resolve(context.Background())
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.True(t, r.OK())
		assert.Equal(t, 7, r.Handle)
	}
	assert.LessOrEqual(t, calls.Load(), int32(2))
}

func TestResolvePanicBecomesUnavailable(t *testing.T) {
	p := New("spinner", func(context.Context) (int, error) {
		panic("boom")
	})

	r := p.Resolve(context.Background())
	assert.Equal(t, Unavailable, r.Status)

	var pe *PanicError
	require.True(t, errors.As(r.Err, &pe))
	assert.Contains(t, pe.Error(), "boom")
}

func TestResolveHonoursContext(t *testing.T) {
	p := New("slow", func(context.Context) (int, error) {
		time.Sleep(200 * time.Millisecond)
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	r := p.Resolve(ctx)
	assert.Equal(t, Unavailable, r.Status)
	assert.ErrorIs(t, r.Err, context.DeadlineExceeded)
}

func TestStaticAndReset(t *testing.T) {
	p := Static("color", true)
	assert.True(t, p.Resolve(context.Background()).OK())

	p.Reset()
	assert.True(t, p.Resolve(context.TODO()).Handle)
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "unavailable", Unavailable.String())
}
