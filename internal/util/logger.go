package util

import "go.uber.org/zap"

// NewLogger returns the shared sugared logger. Callers own flushing: defer
// logger.Sync() at process shutdown.
func NewLogger(env string) *zap.SugaredLogger {
	if env == "production" {
		return zap.Must(zap.NewProduction()).Sugar()
	}

	return zap.Must(zap.NewDevelopment()).Sugar()
}
