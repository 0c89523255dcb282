package ratelimiter

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"schememonitor/internal/config"
)

// FixedWindowRateLimiter counts requests per client over a fixed time frame.
// When the frame elapses the count resets to zero.
type FixedWindowRateLimiter struct {
	sync.RWMutex
	clients map[string]int
	limit   int
	window  time.Duration
	logger  *zap.SugaredLogger
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]int),
		limit:   cfg.RequestsPerTimeFrame,
		window:  cfg.TimeFrame,
		logger:  logger,
	}
}

// Allow reports whether the client may proceed. When the limit is hit it
// returns the time frame after which a retry can succeed. The count is
// checked and advanced under one write lock so concurrent requests cannot
// overshoot the limit, and the reset goroutine is spawned exactly once per
// window.
func (rl *FixedWindowRateLimiter) Allow(clientID string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	count, exists := rl.clients[clientID]
	if count >= rl.limit {
		rl.logger.Debugf("Rate limit exceeded for client: %s", clientID)
		return false, rl.window
	}

	if !exists {
		go rl.resetCount(clientID)
	}
	rl.clients[clientID]++

	return true, 0
}

func (rl *FixedWindowRateLimiter) resetCount(clientID string) {
	time.Sleep(rl.window)
	rl.Lock()
	delete(rl.clients, clientID)
	rl.Unlock()
}
