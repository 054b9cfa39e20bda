package utils

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerMu sync.Mutex
	logger   *zap.Logger
)

// InitLogger replaces the process logger. Production logs JSON at info
// level; any other env logs console output at debug level.
func InitLogger(env string) *zap.Logger {
	build := zap.NewDevelopment
	if env == "production" {
		build = zap.NewProduction
	}
	l, err := build(zap.Fields(zap.String("service", "hirehub")))
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
	return l
}

// GetLogger returns the process logger, creating a production one on first use.
func GetLogger() *zap.Logger {
	loggerMu.Lock()
	l := logger
	loggerMu.Unlock()
	if l == nil {
		return InitLogger("production")
	}
	return l
}
