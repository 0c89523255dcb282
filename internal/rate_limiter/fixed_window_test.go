package ratelimiter

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"schememonitor/internal/config"
)

func TestFixedWindowLimiter(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 2,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}, nil)

	if allow, _ := limiter.Allow("1.2.3.4"); !allow {
		t.Fatal("first request should be allowed")
	}
	if allow, _ := limiter.Allow("1.2.3.4"); !allow {
		t.Fatal("second request should be allowed")
	}

	allow, retryAfter := limiter.Allow("1.2.3.4")
	if allow {
		t.Fatal("third request should be rejected")
	}
	if retryAfter != time.Minute {
		t.Errorf("retryAfter = %v, want %v", retryAfter, time.Minute)
	}

	// A different client has its own window.
	if allow, _ := limiter.Allow("5.6.7.8"); !allow {
		t.Fatal("different client should be allowed")
	}
}

func TestFixedWindowLimiterConcurrent(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 5,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}, nil)

	var wg sync.WaitGroup
	var allowed int64
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := limiter.Allow("9.9.9.9"); ok {
				atomic.AddInt64(&allowed, 1)
			}
		}()
	}
	wg.Wait()

	if allowed != 5 {
		t.Errorf("allowed = %d, want exactly 5", allowed)
	}
}

func TestFixedWindowLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 1,
		TimeFrame:            30 * time.Millisecond,
		Enabled:              true,
	}, nil)

	if allow, _ := limiter.Allow("1.2.3.4"); !allow {
		t.Fatal("first request should be allowed")
	}
	if allow, _ := limiter.Allow("1.2.3.4"); allow {
		t.Fatal("second request in the window should be rejected")
	}

	time.Sleep(60 * time.Millisecond)

	if allow, _ := limiter.Allow("1.2.3.4"); !allow {
		t.Fatal("request in a fresh window should be allowed")
	}
}
