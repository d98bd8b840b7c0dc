package api

import (
	"crypto/subtle"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the id assigned to every request
const RequestIDHeader = "X-Request-ID"

// idleLimiterTTL is how long a client's limiter survives without requests
const idleLimiterTTL = 10 * time.Minute

// clientLimiter holds a rate limiter and its last accessed time in unix nanoseconds
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func newClientLimiter(rps, burst int, now time.Time) *clientLimiter {
	cl := &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
	cl.touch(now)
	return cl
}

func (cl *clientLimiter) touch(now time.Time) {
	cl.lastSeen.Store(now.UnixNano())
}

func (cl *clientLimiter) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, cl.lastSeen.Load()))
}

// CORS allows browser clients from origins to call the API with the key header
func CORS(origins []string, keyHeader string) gin.HandlerFunc {
	allowAll := len(origins) == 0
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}
	allowHeaders := "Content-Type, " + keyHeader + ", " + RequestIDHeader

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case allowAll:
			c.Header("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", allowHeaders)
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func RequestSizeLimit() gin.HandlerFunc {
	return RequestSizeLimitWithSize(1024 * 1024)
}

func RequestSizeLimitWithSize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost ||
			c.Request.Method == http.MethodPut ||
			c.Request.Method == http.MethodPatch {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// RequestID reuses the caller's X-Request-ID or assigns a new uuid
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one line per request
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
			"request_id": c.GetString("request_id"),
		})

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request handled")
		}
	}
}

// APIKeyAuth rejects requests whose header does not carry apiKey.
// An empty apiKey rejects every request.
func APIKeyAuth(header, apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(header)
		if provided == "" {
			types.SendUnauthorized(c, "Unauthorized")
			return
		}

		if apiKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			types.SendUnauthorized(c, "API Key not valid")
			return
		}

		c.Next()
	}
}

func PerClientRateLimit(rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once, rps int, burst int) gin.HandlerFunc {
	cleanupInitialized.Do(func() {
		go cleanupOldRateLimiters(rateLimiters, cleanupStop)
	})

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		now := time.Now()
		limiterInterface, loaded := rateLimiters.Load(clientIP)
		if !loaded {
			limiterInterface, _ = rateLimiters.LoadOrStore(clientIP, newClientLimiter(rps, burst, now))
		}

		cl := limiterInterface.(*clientLimiter)
		cl.touch(now)

		if !cl.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, types.ErrorResponse{
				Error: "Rate limit exceeded. Please slow down your requests.",
			})
			return
		}
		c.Next()
	}
}

func cleanupOldRateLimiters(rateLimiters *sync.Map, cleanupStop chan struct{}) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			pruneIdleLimiters(rateLimiters, now)
		case <-cleanupStop:
			return
		}
	}
}

// pruneIdleLimiters drops limiters of clients not seen for idleLimiterTTL
func pruneIdleLimiters(rateLimiters *sync.Map, now time.Time) {
	rateLimiters.Range(func(key, value interface{}) bool {
		if value.(*clientLimiter).idleSince(now) > idleLimiterTTL {
			rateLimiters.Delete(key)
		}
		return true
	})
}
