//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettingsValidation(t *testing.T) {
	rotating := func(mutate func(*LoggerSettings)) *LoggerSettings {
		s := &LoggerSettings{
			LogLevel:   LogLevelInfo,
			LogType:    LogTypeFile,
			FilePath:   "/var/log/fkba/app.log",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		mutate(s)
		return s
	}

	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{"console logger", &LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeConsole}, false},
		{"file logger with rotation", rotating(func(*LoggerSettings) {}), false},
		{"missing log level", &LoggerSettings{LogType: LogTypeConsole}, true},
		{"unknown log type", &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, true},
		{"file logger without path", rotating(func(s *LoggerSettings) { s.FilePath = "" }), true},
		{"file logger max size too large", rotating(func(s *LoggerSettings) { s.MaxSize = 101 }), true},
		{"file logger without backups", rotating(func(s *LoggerSettings) { s.MaxBackups = 0 }), true},
		{"file logger max age too large", rotating(func(s *LoggerSettings) { s.MaxAge = 400 }), true},
		{"console logger ignores rotation", rotating(func(s *LoggerSettings) { s.LogType = LogTypeConsole; s.MaxSize = 0 }), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
