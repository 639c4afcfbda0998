package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(3, 3) // one token every 20s
	defer rl.Stop()
	rl.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("fourth request should be limited")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("other clients keep their own bucket")
	}

	now = now.Add(21 * time.Second)
	if !rl.Allow("10.0.0.1") {
		t.Error("one token should have come back")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("only one token should have come back")
	}

	now = now.Add(5 * time.Minute)
	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("refilled bucket: request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("refill is capped at capacity")
	}
}

func TestRateLimiter_NoRefill(t *testing.T) {
	rl := NewRateLimiter(1, 0)
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("bucket never refills without a rate")
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	defer rl.Stop()
	rl.now = func() time.Time { return now }

	rl.Allow("10.0.0.1")
	now = now.Add(2 * time.Hour)
	rl.Allow("10.0.0.2")
	rl.cleanup()

	if _, ok := rl.clients["10.0.0.1"]; ok {
		t.Error("idle bucket should be removed")
	}
	if _, ok := rl.clients["10.0.0.2"]; !ok {
		t.Error("fresh bucket should be kept")
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(2, 1)
	defer rl.Stop()

	router := gin.New()
	router.POST("/inquiries", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/inquiries", nil)
		req.RemoteAddr = "192.0.2.10:5555"
		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)
		codes = append(codes, last.Code)
	}

	want := []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("status codes = %v, want %v", codes, want)
		}
	}
	if got := last.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After = %q, want 60", got)
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "1"},
		{d: 400 * time.Millisecond, want: "1"},
		{d: 12 * time.Minute, want: "720"},
	}
	for _, tt := range tests {
		if got := retryAfterSeconds(tt.d); got != tt.want {
			t.Errorf("retryAfterSeconds(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
