package middleware

import (
	"sync"
	"time"
)

// cachedResponse is a completed write that can be replayed.
type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// idempotencyEntry is either reserved by a request still running or holds
// its finished response.
type idempotencyEntry struct {
	response  *cachedResponse
	expiresAt time.Time
}

type reservation int

const (
	reserved reservation = iota
	replay
	inFlight
)

// idempotencyCache remembers write responses by request fingerprint.
type idempotencyCache struct {
	mu       sync.Mutex
	entries  map[string]*idempotencyEntry
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	c := &idempotencyCache{
		entries: make(map[string]*idempotencyEntry),
		ttl:     ttl,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
	go c.sweepLoop()
	return c
}

// reserve claims key for the calling request. A finished entry is returned
// for replay; a running one reports inFlight.
func (c *idempotencyCache) reserve(key string) (reservation, *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if e, ok := c.entries[key]; ok && now.Before(e.expiresAt) {
		if e.response == nil {
			return inFlight, nil
		}
		return replay, e.response
	}
	c.entries[key] = &idempotencyEntry{expiresAt: now.Add(c.ttl)}
	return reserved, nil
}

// complete stores the response for a reserved key.
func (c *idempotencyCache) complete(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &idempotencyEntry{response: resp, expiresAt: c.now().Add(c.ttl)}
}

// release drops a reservation whose request should be retryable.
func (c *idempotencyCache) release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok && e.response == nil {
		delete(c.entries, key)
	}
}

// Len counts stored entries, expired ones included.
func (c *idempotencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stop ends the sweeper.
func (c *idempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *idempotencyCache) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stopCh:
			return
		}
	}
}

func (c *idempotencyCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
