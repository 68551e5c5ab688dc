package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"

	"medingen-server/internal/utils"
)

// rateLimiter keeps one token bucket per client IP.
type rateLimiter struct {
	clients map[string]*ratelimit.Bucket
	rate    float64
	burst   int64
	mu      sync.RWMutex
}

func newRateLimiter(rate float64, burst int64) *rateLimiter {
	rl := &rateLimiter{
		clients: make(map[string]*ratelimit.Bucket),
		rate:    rate,
		burst:   burst,
	}
	go rl.cleanup()
	return rl
}

func (rl *rateLimiter) getBucket(clientIP string) *ratelimit.Bucket {
	rl.mu.RLock()
	bucket, exists := rl.clients[clientIP]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		if bucket, exists = rl.clients[clientIP]; !exists {
			bucket = ratelimit.NewBucketWithRate(rl.rate, rl.burst)
			rl.clients[clientIP] = bucket
		}
		rl.mu.Unlock()
	}

	return bucket
}

// cleanup drops buckets that have refilled completely, i.e. idle clients.
func (rl *rateLimiter) cleanup() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		for ip, bucket := range rl.clients {
			if bucket.Available() == bucket.Capacity() {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimitMiddleware limits each client IP to a token-bucket budget.
func RateLimitMiddleware(rate float64, burst int64) gin.HandlerFunc {
	limiter := newRateLimiter(rate, burst)
	return func(c *gin.Context) {
		bucket := limiter.getBucket(c.ClientIP())
		if bucket.TakeAvailable(1) < 1 {
			c.Header("Retry-After", "1")
			utils.TooManyRequests(c, "Rate limit exceeded. Please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
