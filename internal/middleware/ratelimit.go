package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// rateLimiter tracks request timestamps per client IP within a sliding window.
type rateLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	history map[string][]time.Time
}

func newRateLimiter(max int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		max:     max,
		window:  window,
		history: make(map[string][]time.Time),
	}
}

// allow records a hit for ip and reports whether it is within the limit.
func (r *rateLimiter) allow(ip string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := now.Add(-r.window)
	recent := r.history[ip][:0]
	for _, t := range r.history[ip] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= r.max {
		r.history[ip] = recent
		return false
	}

	r.history[ip] = append(recent, now)
	return true
}

// sweep drops IPs with no activity inside the window. Called periodically so
// the map does not grow without bound.
func (r *rateLimiter) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := now.Add(-r.window)
	for ip, hits := range r.history {
		live := false
		for _, t := range hits {
			if t.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(r.history, ip)
		}
	}
}

// RateLimit returns a middleware that enforces a per-IP sliding-window rate
// limit, answering 429 with a Retry-After hint once the limit is exceeded.
func RateLimit(max int, window time.Duration) gin.HandlerFunc {
	limiter := newRateLimiter(max, window)

	go func() {
		ticker := time.NewTicker(window * 10)
		defer ticker.Stop()
		for now := range ticker.C {
			limiter.sweep(now)
		}
	}()

	retryAfter := strconv.Itoa(int(window.Round(time.Second) / time.Second))
	if retryAfter == "0" {
		retryAfter = "1"
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		if !limiter.allow(ip, time.Now()) {
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"ok":      0,
				"code":    http.StatusTooManyRequests,
				"message": "too many requests, slow down",
			})
			return
		}

		c.Next()
	}
}
