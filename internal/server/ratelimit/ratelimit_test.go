package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
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

func newTestLimiter(t *testing.T, cfg *Config) (*Limiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
	cfg.CleanupInterval = 0
	l := NewLimiter(cfg)
	l.now = clock.Now
	t.Cleanup(l.Stop)
	return l, clock
}

func TestLimiter_DefaultLimit(t *testing.T) {
	l, clock := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("10.0.0.1", "/other", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := l.Allow("10.0.0.1", "/other", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.InDelta(t, 6*time.Second, info.RetryAfter, float64(10*time.Millisecond))
	assert.True(t, info.ResetTime.After(clock.Now()))

	clock.Advance(7 * time.Second)
	allowed, _ = l.Allow("10.0.0.1", "/other", "GET")
	assert.True(t, allowed, "one token refilled")
}

func TestLimiter_ClientsAreIsolated(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})

	allowed, _ := l.Allow("a", "/x", "GET")
	assert.True(t, allowed)
	allowed, _ = l.Allow("a", "/x", "GET")
	assert.False(t, allowed)

	allowed, _ = l.Allow("b", "/x", "GET")
	assert.True(t, allowed)
}

func TestLimiter_EndpointTierSharesBucketAcrossIDs(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/v1/clients/", Method: "GET", Limit: 2, Window: time.Minute, Burst: 2},
		},
	})

	allowed, info := l.Allow("c", "/v1/clients/1/dashboard", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)
	allowed, _ = l.Allow("c", "/v1/clients/2/dashboard", "GET")
	assert.True(t, allowed)
	allowed, _ = l.Allow("c", "/v1/clients/3/dashboard", "GET")
	assert.False(t, allowed)

	allowed, _ = l.Allow("c", "/v1/clients/3/dashboard", "POST")
	assert.True(t, allowed, "other methods use the default tier")
}

func TestLimiter_UnlimitedHealth(t *testing.T) {
	l, _ := newTestLimiter(t, NewConfig(true, 1, nil))

	for i := 0; i < 50; i++ {
		allowed, info := l.Allow("c", "/health", "GET")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
	assert.Zero(t, l.Len())
}

func TestLimiter_AllowAndDenyLists(t *testing.T) {
	cfg := &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Allowlist:     ParseIPList("10.0.0.1, 10.0.0.2"),
		Denylist:      ParseIPList("10.0.0.9"),
	}
	l, _ := newTestLimiter(t, cfg)

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("10.0.0.2", "/x", "GET")
		assert.True(t, allowed)
	}

	allowed, _ := l.Allow("10.0.0.9", "/x", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(NewConfig(false, 1, nil))
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("c", "/x", "GET")
		assert.True(t, allowed)
	}

	nilCfg := NewLimiter(nil)
	defer nilCfg.Stop()
	allowed, _ := nilCfg.Allow("c", "/x", "GET")
	assert.True(t, allowed)
}

func TestLimiter_Sweep(t *testing.T) {
	l, clock := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 5, DefaultWindow: time.Minute, IdleTTL: time.Hour})

	l.Allow("old", "/x", "GET")
	clock.Advance(50 * time.Minute)
	l.Allow("recent", "/x", "GET")
	clock.Advance(20 * time.Minute)

	require.Equal(t, 2, l.Len())
	l.Sweep()
	assert.Equal(t, 1, l.Len())
}

func TestLimiter_Concurrent(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Hour})

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow("c", "/x", "GET"); ok {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowedCount)
}

func TestLimiter_StopIsIdempotent(t *testing.T) {
	l := NewLimiter(NewConfig(true, 10, nil))
	l.Stop()
	l.Stop()
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		path, method string
		want         string
	}{
		{"/health", "GET", "/health"},
		{"/v1/clients/abc/dashboard", "GET", "/v1/clients/"},
		{"/v1/eval/job-health", "POST", "/v1/eval/"},
		{"/v1/eval/job-health", "GET", ""},
		{"/unknown", "GET", ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Path)
		})
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, 120, []string{"127.0.0.1", " "})
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 120, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.Equal(t, map[string]bool{"127.0.0.1": true}, cfg.Allowlist)
	assert.NotEmpty(t, cfg.Endpoints)
}
