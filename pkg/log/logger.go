// Package log provides named, leveled loggers for the renderer components.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

type Level logging.Level

// The levels that can be passed to SetLevel.
const (
	Debug Level = iota
	Info
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`[%{time:15:04:05.000}] [%{module}] %{level}: %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the subset of the backend logger the renderer uses.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink overrides the backend output sink.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	leveledBackend = logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets logger verbosity for all modules.
func SetLevel(level Level) {
	var loggerLevel logging.Level

	switch level {
	case Debug:
		loggerLevel = logging.DEBUG
	case Info:
		loggerLevel = logging.INFO
	case Warning:
		loggerLevel = logging.WARNING
	case Error:
		loggerLevel = logging.ERROR
	}

	leveledBackend.SetLevel(loggerLevel, "")
}

func init() {
	SetSink(os.Stderr)
	SetLevel(Info)
}
