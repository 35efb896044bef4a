package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"
)

// ErrNotInitialized is returned by GetLogger until InitLogger succeeds.
var ErrNotInitialized = errors.New("logger not initialized: call InitLogger first")

var (
	sharedMu sync.RWMutex
	shared   Logger
)

var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

// New builds a logger from settings without touching the shared instance.
func New(settings *config.LoggerSettings) (Logger, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}
	if settings.LogType == config.LogTypeFile {
		return NewFileLogger(settings.LogLevel, settings.FilePath, settings.MaxSize, settings.MaxBackups, settings.MaxAge, settings.Compress), nil
	}
	return NewConsoleLogger(settings.LogLevel), nil
}

// InitLogger sets the shared logger. Once set, later calls keep it; a
// failed call leaves the logger unset so it can be retried.
func InitLogger(settings *config.LoggerSettings) error {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared != nil {
		return nil
	}
	log, err := New(settings)
	if err != nil {
		return err
	}
	shared = log
	return nil
}

// GetLogger returns the shared logger.
func GetLogger() (Logger, error) {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if shared == nil {
		return nil, ErrNotInitialized
	}
	return shared, nil
}

// parseLevel maps a configured level to slog, info when unknown.
func parseLevel(level string) slog.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return slog.LevelInfo
}
