// Package logger is the operator facing output of bgrot. Successful
// wallpaper changes go to standard output, failures to standard error.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// StandardLogger writes plain lines, no timestamps, to two writers.
type StandardLogger struct {
	out *log.Logger
	err *log.Logger
}

func NewStandardLogger(out, err io.Writer) *StandardLogger {
	return &StandardLogger{
		out: log.New(out, "", 0),
		err: log.New(err, "", 0),
	}
}

// NewConsole logs to stdout and stderr.
func NewConsole() *StandardLogger {
	return NewStandardLogger(os.Stdout, os.Stderr)
}

func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.out.Printf(format, args...)
}

func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.err.Printf(format, args...)
}

type NopLogger struct{}

func (NopLogger) Info(format string, args ...interface{})  {}
func (NopLogger) Error(format string, args ...interface{}) {}

// MockLogger records every formatted message for tests.
type MockLogger struct {
	InfoCalls  []string
	ErrorCalls []string
}

func (m *MockLogger) Info(format string, args ...interface{}) {
	m.InfoCalls = append(m.InfoCalls, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Error(format string, args ...interface{}) {
	m.ErrorCalls = append(m.ErrorCalls, fmt.Sprintf(format, args...))
}

var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = NopLogger{}
	_ Logger = (*MockLogger)(nil)
)
