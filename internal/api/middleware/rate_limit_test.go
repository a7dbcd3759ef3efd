package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow(), "request %d within the budget", i+1)
	}
	assert.False(t, rl.Allow(), "budget exhausted")
}

func TestRateLimiterRefills(t *testing.T) {
	clock := newFakeClock()
	rl := NewRateLimiterWithClock(10, time.Second, clock.Now)

	for i := 0; i < 10; i++ {
		require.True(t, rl.Allow())
	}
	require.False(t, rl.Allow())

	t.Run("tokens return as time passes", func(t *testing.T) {
		clock.Advance(300 * time.Millisecond)
		assert.True(t, rl.Allow(), "0.3s at 10 req/s buys three tokens")
		assert.True(t, rl.Allow())
		assert.True(t, rl.Allow())
		assert.False(t, rl.Allow())
	})

	t.Run("refill is capped at capacity", func(t *testing.T) {
		clock.Advance(time.Hour)
		for i := 0; i < 10; i++ {
			assert.True(t, rl.Allow(), "request %d within the refilled budget", i+1)
		}
		assert.False(t, rl.Allow())
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimit(2, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		return w
	}

	assert.Equal(t, http.StatusOK, do().Code)
	assert.Equal(t, http.StatusOK, do().Code)

	limited := do()
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "60", limited.Header().Get("Retry-After"))
	assert.Contains(t, limited.Body.String(), "Too many requests")
}
