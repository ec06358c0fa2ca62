package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/i18n"
	"github.com/guttosm/spool-service/internal/metrics"
)

const defaultNumShards = 16

// Quota headers set on every limited response.
const (
	RateLimitLimitHeader     = "X-RateLimit-Limit"
	RateLimitRemainingHeader = "X-RateLimit-Remaining"
	RateLimitResetHeader     = "X-RateLimit-Reset"
)

// window is the quota state of one client.
type window struct {
	used    int
	resetAt time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	clients map[string]*window
}

// ShardedRateLimiter enforces a fixed-window quota per client. Clients are
// hashed across shards so concurrent requests rarely share a lock.
type ShardedRateLimiter struct {
	shards   []*limiterShard
	rate     int
	period   time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// RateLimiter is the limiter used by the router.
type RateLimiter = ShardedRateLimiter

// NewRateLimiter allows rate requests per client in every period.
func NewRateLimiter(rate int, period time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(rate, period, defaultNumShards)
}

// NewShardedRateLimiter is NewRateLimiter with an explicit shard count.
func NewShardedRateLimiter(rate int, period time.Duration, numShards int) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	rl := &ShardedRateLimiter{
		shards: make([]*limiterShard, numShards),
		rate:   rate,
		period: period,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i] = &limiterShard{clients: make(map[string]*window)}
	}

	go rl.evictLoop()
	return rl
}

func (rl *ShardedRateLimiter) shardFor(client string) *limiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(client))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// take consumes one request from the client's quota. It reports whether the
// request fits, how many remain and how long until the window resets.
func (rl *ShardedRateLimiter) take(client string) (ok bool, remaining int, resetIn time.Duration) {
	shard := rl.shardFor(client)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := rl.now()
	w := shard.clients[client]
	if w == nil || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(rl.period)}
		shard.clients[client] = w
	}
	resetIn = w.resetAt.Sub(now)

	if w.used >= rl.rate {
		return false, 0, resetIn
	}
	w.used++
	return true, rl.rate - w.used, resetIn
}

// RateLimit returns the middleware. Clients presenting an API key share one
// quota per key, everyone else is limited by IP. Health endpoints are exempt.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	limit := strconv.Itoa(rl.rate)

	return func(c *gin.Context) {
		if isHealthPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		client := clientIdentifier(c)
		ok, remaining, resetIn := rl.take(client)
		resetSeconds := strconv.Itoa(int(math.Ceil(resetIn.Seconds())))

		c.Header(RateLimitLimitHeader, limit)
		c.Header(RateLimitRemainingHeader, strconv.Itoa(remaining))
		c.Header(RateLimitResetHeader, resetSeconds)

		if !ok {
			metrics.RecordRateLimited(client[:strings.IndexByte(client, ':')])
			c.Header("Retry-After", resetSeconds)
			msg := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewError(dto.ErrCodeRateLimit, msg, GetRequestID(c)))
			return
		}

		c.Next()
	}
}

func isHealthPath(path string) bool {
	return path == "/healthz" || path == "/readyz" || path == "/metrics"
}

// clientIdentifier returns the key fingerprint when one is presented, otherwise the IP.
func clientIdentifier(c *gin.Context) string {
	if keyID := GetAPIKeyID(c); keyID != "" {
		return "key:" + keyID
	}
	if key := apiKeyFrom(c); key != "" {
		return "key:" + KeyFingerprint(key)
	}
	return "ip:" + c.ClientIP()
}

func (rl *ShardedRateLimiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictExpired()
		case <-rl.stopCh:
			return
		}
	}
}

// evictExpired drops clients whose window ended at least one period ago.
func (rl *ShardedRateLimiter) evictExpired() {
	cutoff := rl.now().Add(-rl.period)
	for _, shard := range rl.shards {
		shard.mu.Lock()
		for client, w := range shard.clients {
			if w.resetAt.Before(cutoff) {
				delete(shard.clients, client)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop ends the eviction goroutine. Safe to call twice.
func (rl *ShardedRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats returns the number of tracked clients in total and per shard.
func (rl *ShardedRateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.clients)
		shard.mu.Unlock()
		total += perShard[i]
	}
	return total, perShard
}
