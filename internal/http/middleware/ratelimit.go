package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type windowState struct {
	start time.Time
	count int
}

var (
	rlMu      sync.Mutex
	rlClients = make(map[string]*windowState)
)

// SimpleRateLimit is the in-process fallback limiter used when Redis is
// not configured. Same fixed-window semantics as RedisRateLimit, local to
// one instance.
func SimpleRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rlMu.Lock()
		st, ok := rlClients[ip]
		if !ok || now.Sub(st.start) > window {
			rlClients[ip] = &windowState{start: now, count: 1}
			rlMu.Unlock()
			c.Next()
			return
		}
		st.count++
		blocked := st.count > maxRequests
		rlMu.Unlock()

		RLRequests.WithLabelValues(c.FullPath()).Inc()
		if blocked {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// AuthRateLimit picks the Redis limiter when available and the in-process
// one otherwise.
func AuthRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	redisLimit := RedisRateLimit(maxRequests, window)
	localLimit := SimpleRateLimit(maxRequests, window)
	return func(c *gin.Context) {
		if redisClient != nil {
			redisLimit(c)
			return
		}
		localLimit(c)
	}
}
