package middleware

import (
	"sync"
	"time"

	"eduhub/config"
	"eduhub/utils"

	"github.com/gin-gonic/gin"
)

type TokenBucket struct {
	tokens     int
	capacity   int
	refillRate time.Duration
	lastRefill time.Time
	mutex      sync.Mutex
}

func NewTokenBucket(capacity int, refillRate time.Duration) *TokenBucket {
	return &TokenBucket{
		tokens:     capacity,
		capacity:   capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (tb *TokenBucket) Allow() bool {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)

	if elapsed >= tb.refillRate {
		tokensToAdd := int(elapsed / tb.refillRate)
		tb.tokens = min(tb.capacity, tb.tokens+tokensToAdd)
		tb.lastRefill = now
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true
	}

	return false
}

type RateLimiter struct {
	visitors map[string]*visitor
	mutex    sync.Mutex
	rate     time.Duration
	burst    int
}

type visitor struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewRateLimiter(rate time.Duration, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		burst:    burst,
	}
	go rl.cleanupVisitors()
	return rl
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{bucket: NewTokenBucket(rl.burst, rl.rate)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	rl.mutex.Unlock()

	return v.bucket.Allow()
}

func (rl *RateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		for key, v := range rl.visitors {
			if time.Since(v.lastSeen) > 30*time.Minute {
				delete(rl.visitors, key)
			}
		}
		rl.mutex.Unlock()
	}
}

var apiLimiter = NewRateLimiter(time.Second, 60)

// rateLimitKey buckets by user id when an identity is already in the
// context, so authenticated clients behind one NAT do not share a
// bucket; anonymous traffic is keyed by client IP.
func rateLimitKey(c *gin.Context) string {
	if userID, ok := utils.GetUserIDFromContext(c); ok && !userID.IsZero() {
		return "user:" + userID.Hex()
	}
	return "ip:" + c.ClientIP()
}

// RateLimitMiddleware limits requests per client
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.AppConfig != nil && !config.AppConfig.RateLimitEnabled {
			c.Next()
			return
		}

		if !apiLimiter.Allow(rateLimitKey(c)) {
			utils.TooManyRequestsResponse(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}
