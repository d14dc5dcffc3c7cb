package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// Init builds the singleton logger. A development environment gets the
// human-readable console encoder; everything else logs production JSON.
func Init(env string) {
	once.Do(func() {
		var cfg zap.Config
		if env == "development" {
			cfg = zap.NewDevelopmentConfig()
		} else {
			cfg = zap.NewProductionConfig()
		}
		cfg.OutputPaths = []string{"stdout"}
		logger, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = logger
	})
}

// GetLogger returns the singleton, initializing with production defaults if
// Init was never called.
func GetLogger() *zap.Logger {
	if instance == nil {
		Init("")
	}
	return instance
}
