// Package logging bootstraps the process-wide zap logger.
package logging

import "go.uber.org/zap"

// New creates a new zap logger for the service. Logs are structured
// JSON in production form.
func New() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		// fall back to the example config rather than running silent
		return zap.NewExample()
	}
	return logger
}
