package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// slogLogger adapts a *slog.Logger to Logger.
type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(args ...interface{}) {
	msg, attrs := splitArgs(args)
	l.logger.Debug(msg, attrs...)
}

func (l *slogLogger) Info(args ...interface{}) {
	msg, attrs := splitArgs(args)
	l.logger.Info(msg, attrs...)
}

func (l *slogLogger) Warn(args ...interface{}) {
	msg, attrs := splitArgs(args)
	l.logger.Warn(msg, attrs...)
}

func (l *slogLogger) Error(args ...interface{}) {
	msg, attrs := splitArgs(args)
	l.logger.Error(msg, attrs...)
}

func (l *slogLogger) Fatal(args ...interface{}) {
	msg, attrs := splitArgs(args)
	l.logger.Error(msg, attrs...)
	os.Exit(1)
}

func (l *slogLogger) Panic(args ...interface{}) {
	msg, attrs := splitArgs(args)
	l.logger.Error(msg, attrs...)
	panic(msg)
}

// splitArgs treats args as a message followed by key/value pairs when the
// shape allows it, and falls back to fmt.Sprint otherwise.
func splitArgs(args []interface{}) (string, []any) {
	if len(args) == 0 {
		return "", nil
	}
	msg, ok := args[0].(string)
	rest := args[1:]
	if !ok || len(rest)%2 != 0 {
		return fmt.Sprint(args...), nil
	}
	for i := 0; i < len(rest); i += 2 {
		if _, isKey := rest[i].(string); !isKey {
			return fmt.Sprint(args...), nil
		}
	}
	return msg, rest
}
