package ratelimiter

import (
	"go.uber.org/zap"

	"schememonitor/internal/config"
	"schememonitor/internal/util"
)

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	return NewFixedWindowLimiter(cfg, logger)
}
