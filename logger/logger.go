// Package logger wraps go-logging with a console backend and an
// optional file backend for the gopress server.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/op/go-logging"
)

const (
	logFileName = "gopress.log"
	timeFormat  = "2006/01/02 15:04:05"
)

var (
	logger  *logging.Logger
	logFile *os.File
)

// InitLogger initializes the logging backends. Console output honors the
// given level; the file backend, when a log folder is configured, always
// records at DEBUG.
func InitLogger(level logging.Level, logFolder string) {
	newLogger := logging.MustGetLogger("gopress")
	backends := make([]logging.Backend, 0, 2)

	consoleBackend := logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stderr, "", 0),
		logging.MustStringFormatter(`%{time:`+timeFormat+`} %{level} - %{message}`),
	)
	leveled := logging.AddModuleLevel(consoleBackend)
	leveled.SetLevel(level, "gopress")
	backends = append(backends, leveled)

	if fileBackend := initFileBackend(logFolder); fileBackend != nil {
		fileLeveled := logging.AddModuleLevel(fileBackend)
		fileLeveled.SetLevel(logging.DEBUG, "gopress")
		backends = append(backends, fileLeveled)
	}

	newLogger.SetBackend(logging.MultiLogger(backends...))
	logger = newLogger
}

func initFileBackend(logFolder string) logging.Backend {
	if logFolder == "" {
		return nil
	}
	if err := os.MkdirAll(logFolder, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log folder %s: %v\n", logFolder, err)
		return nil
	}

	logPath := filepath.Join(logFolder, logFileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o660)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", logPath, err)
		return nil
	}

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file

	backend := logging.NewLogBackend(file, "", 0)
	return logging.NewBackendFormatter(backend,
		logging.MustStringFormatter(`%{time:`+timeFormat+`} %{level} - %{message}`))
}

// CloseLogger closes the log file, if any. Called during shutdown.
func CloseLogger() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func Debug(args ...any) {
	logger.Debug(args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warning(args ...any) {
	logger.Warning(args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
