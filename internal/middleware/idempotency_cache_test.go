package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIdempotencyCache(t *testing.T) (*idempotencyCache, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	c := newIdempotencyCache(time.Minute)
	c.now = clock.Now
	t.Cleanup(c.Stop)
	return c, clock
}

func TestIdempotencyCache_Lifecycle(t *testing.T) {
	cache, clock := newTestIdempotencyCache(t)
	used := &cachedResponse{StatusCode: 200, ContentType: "application/json", Body: []byte(`{"remaining_weight":750}`)}

	state, _ := cache.reserve("use-1")
	require.Equal(t, reserved, state)

	state, _ = cache.reserve("use-1")
	assert.Equal(t, inFlight, state, "second caller while the first runs")

	cache.complete("use-1", used)
	state, resp := cache.reserve("use-1")
	require.Equal(t, replay, state)
	assert.Equal(t, used, resp)

	clock.Advance(time.Minute)
	state, _ = cache.reserve("use-1")
	assert.Equal(t, reserved, state, "expired entries are claimable again")
}

func TestIdempotencyCache_Release(t *testing.T) {
	cache, _ := newTestIdempotencyCache(t)

	cache.reserve("failed")
	cache.release("failed")
	state, _ := cache.reserve("failed")
	assert.Equal(t, reserved, state)

	cache.complete("done", &cachedResponse{StatusCode: 201})
	cache.release("done")
	state, _ = cache.reserve("done")
	assert.Equal(t, replay, state, "release never drops a finished response")
}

func TestIdempotencyCache_Sweep(t *testing.T) {
	cache, clock := newTestIdempotencyCache(t)

	cache.complete("old", &cachedResponse{StatusCode: 201})
	clock.Advance(45 * time.Second)
	cache.complete("new", &cachedResponse{StatusCode: 201})
	cache.reserve("running")
	require.Equal(t, 3, cache.Len())

	clock.Advance(30 * time.Second)
	cache.sweep()

	assert.Equal(t, 2, cache.Len())
	state, _ := cache.reserve("new")
	assert.Equal(t, replay, state)
}

func TestIdempotencyCache_StopIsIdempotent(t *testing.T) {
	cache := newIdempotencyCache(time.Minute)
	cache.Stop()
	assert.NotPanics(t, cache.Stop)
}
