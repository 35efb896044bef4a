// Package logger provides the process wide structured logger.
package logger

// Logger defines the logging interface. The first argument is the message;
// any remaining arguments are alternating key/value pairs.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
