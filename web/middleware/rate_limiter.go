package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

// RateLimiterConfig holds configuration for rate limiting
type RateLimiterConfig struct {
	RequestsPerMinute int // Max webhook calls per client per minute
	BurstSize         int // Allow burst of N requests
}

// TokenBucket implements a token bucket rate limiter
type TokenBucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a new token bucket
func NewTokenBucket(maxTokens float64, refillRate float64) *TokenBucket {
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow checks if a request can proceed and consumes a token if so
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()

	// Refill tokens based on elapsed time
	tb.tokens = min(tb.maxTokens, tb.tokens+(elapsed*tb.refillRate))
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// ClientRateLimiter manages per-client token buckets. The bucket map is an
// LRU so idle clients age out on their own instead of needing a cleanup
// goroutine.
type ClientRateLimiter struct {
	config  RateLimiterConfig
	buckets *lru.Cache
	mu      sync.Mutex
	logger  *zap.Logger
}

// NewClientRateLimiter creates a rate limiter keyed by client address.
func NewClientRateLimiter(config RateLimiterConfig, logger *zap.Logger) *ClientRateLimiter {
	cache, _ := lru.New(1024)
	return &ClientRateLimiter{
		config:  config,
		buckets: cache,
		logger:  logger,
	}
}

// Allow checks whether a request from the given client can proceed.
func (crl *ClientRateLimiter) Allow(clientIP string) bool {
	crl.mu.Lock()
	var bucket *TokenBucket
	if cached, ok := crl.buckets.Get(clientIP); ok {
		bucket = cached.(*TokenBucket)
	} else {
		refillRate := float64(crl.config.RequestsPerMinute) / 60.0
		bucket = NewTokenBucket(float64(crl.config.BurstSize), refillRate)
		crl.buckets.Add(clientIP, bucket)
	}
	crl.mu.Unlock()

	return bucket.Allow()
}

// RateLimitMiddleware creates a Gin middleware limiting webhook calls per
// client address.
func RateLimitMiddleware(limiter *ClientRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if !limiter.Allow(clientIP) {
			limiter.logger.Warn("Rate limit exceeded", zap.String("client_ip", clientIP))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, please slow down",
			})
			return
		}
		c.Next()
	}
}
