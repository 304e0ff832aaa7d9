package core

import "log"

// Logger is the logging interface used throughout the renderer, so
// that integrators and the render driver can be driven silently in
// tests and verbosely from the command-line harness without a build
// tag or a global.
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything written to it. It is the default
// logger for integrators and the render driver.
type NopLogger struct{}

// Printf implements Logger by doing nothing.
func (NopLogger) Printf(format string, args ...interface{}) {}

// StdLogger adapts the standard library's *log.Logger to the Logger interface.
type StdLogger struct {
	L *log.Logger
}

// Printf implements Logger by delegating to the wrapped *log.Logger.
func (s StdLogger) Printf(format string, args ...interface{}) {
	s.L.Printf(format, args...)
}
