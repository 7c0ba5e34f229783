package middlewares

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/utils"
	"golang.org/x/time/rate"
)

var errTooManyRequests = errors.New("too many requests, please wait a moment")

// RateLimiter adalah sliding window per IP.
type RateLimiter struct {
	rate     int
	interval time.Duration
	ips      map[string][]time.Time
	mu       sync.Mutex
	now      func() time.Time
	swept    time.Time
}

func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		rate:     rate,
		interval: interval,
		ips:      make(map[string][]time.Time),
		now:      time.Now,
	}
}

// NewStrictRateLimiter dipakai untuk /login: 5 percobaan per menit untuk
// semua client. Limiter dibuat sekali supaya token bucket-nya bertahan.
func NewStrictRateLimiter() gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Every(time.Minute/5), 5)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			utils.AbortWithError(c, http.StatusTooManyRequests, errTooManyRequests)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			utils.AbortWithError(c, http.StatusTooManyRequests, errTooManyRequests)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.interval)
	if now.Sub(rl.swept) >= rl.interval {
		rl.sweepLocked(cutoff)
		rl.swept = now
	}

	valid := rl.ips[ip][:0]
	for _, t := range rl.ips[ip] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= rl.rate {
		rl.ips[ip] = valid
		return false
	}

	rl.ips[ip] = append(valid, now)
	return true
}

// sweepLocked membuang IP yang tidak punya request di dalam window.
func (rl *RateLimiter) sweepLocked(cutoff time.Time) {
	for ip, hits := range rl.ips {
		if len(hits) == 0 || !hits[len(hits)-1].After(cutoff) {
			delete(rl.ips, ip)
		}
	}
}
