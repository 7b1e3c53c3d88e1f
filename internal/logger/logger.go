// Package logger holds the process-wide zap sugared logger shared by
// the API server and the sweep binary.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the shared logger once for the given APP_ENV value:
// JSON output under "production", console output everywhere else.
func Init(env string) {
	once.Do(func() {
		var base *zap.Logger
		var err error

		if env == "production" {
			base, err = zap.NewProduction()
		} else {
			base, err = zap.NewDevelopment()
		}

		if err != nil {
			// A broken logger must not take the process down.
			base = zap.NewNop()
		}

		sugar = base.Sugar()
	})
}

// Get hands back the shared logger, falling back to a development
// configuration when Init was never called (tests, mostly).
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes buffered entries; deferred from main before exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
