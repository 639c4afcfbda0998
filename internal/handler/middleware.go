package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"estate/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// TraceIDHeader carries the request trace id in and out
const TraceIDHeader = "X-Trace-ID"

// RequestLogger logs every request with its status, latency and trace id.
// The trace id is taken from X-Trace-ID or generated, echoed back, and
// stored on the request context for downstream publishers.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Set("trace_id", traceID)
		c.Header(TraceIDHeader, traceID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), notify.TraceIDKey{}, traceID))

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			slog.String("client_ip", c.ClientIP()),
			slog.String("trace_id", traceID),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("error", c.Errors.String()))
		}
		logger.LogAttrs(c.Request.Context(), level, "request", attrs...)
	}
}

const (
	idleClientThreshold = 1 * time.Hour
	cleanupInterval     = 30 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Each bucket holds
// capacity tokens and refills at perMinute tokens a minute.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	perMinute   int
	clients     map[string]*clientLimiter
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

// NewRateLimiter creates a limiter and starts its idle-client cleanup
func NewRateLimiter(capacity, perMinute int) *RateLimiter {
	rl := &RateLimiter{
		capacity:    capacity,
		perMinute:   perMinute,
		clients:     make(map[string]*clientLimiter),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for ip, client := range r.clients {
		if now.Sub(client.lastSeen) > idleClientThreshold {
			delete(r.clients, ip)
		}
	}
}

// Stop ends the cleanup goroutine
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

// Allow takes one token from the client's bucket
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	client, exists := r.clients[ip]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(r.limit(), r.capacity)}
		r.clients[ip] = client
	}
	client.lastSeen = now
	return client.limiter.AllowN(now, 1)
}

func (r *RateLimiter) limit() rate.Limit {
	if r.perMinute <= 0 {
		return 0
	}
	return rate.Limit(float64(r.perMinute) / 60)
}

// tokenInterval is how long one token takes to come back
func (r *RateLimiter) tokenInterval() time.Duration {
	if r.perMinute <= 0 {
		return time.Minute
	}
	return time.Minute / time.Duration(r.perMinute)
}

// Middleware rejects requests over the limit with 429
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.Allow(c.ClientIP()) {
			c.Header("Retry-After", retryAfterSeconds(r.tokenInterval()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			return
		}
		c.Next()
	}
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
