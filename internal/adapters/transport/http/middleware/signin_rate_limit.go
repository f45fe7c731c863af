package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
)

type attemptWindow struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// NewSigninRateLimitPerIP counts signin attempts per client IP over a
// fixed window. Once maxAttempts is reached, every further request in the
// same window answers 429 regardless of credential correctness. The
// counter resets when the window rolls over, not gradually.
func NewSigninRateLimitPerIP(maxAttempts int, window time.Duration, cacheSize int) gin.HandlerFunc {
	visitors, _ := lru.New[string, *attemptWindow](cacheSize)

	return func(c *gin.Context) {
		host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
		if err != nil {
			host = c.Request.RemoteAddr
		}

		w, ok := visitors.Get(host)
		if !ok {
			w = &attemptWindow{resetAt: time.Now().Add(window)}
			visitors.Add(host, w)
		}

		w.mu.Lock()
		now := time.Now()
		if now.After(w.resetAt) {
			w.count = 0
			w.resetAt = now.Add(window)
		}
		w.count++
		exceeded := w.count > maxAttempts
		w.mu.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "too many login attempts, please try again later",
			})
			return
		}
		c.Next()
	}
}
