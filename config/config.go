// Package config exposes the process configuration surface for gopress.
// All values come from GOPRESS_* environment variables with sensible
// defaults, so the binary runs without any configuration at all.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

const (
	defaultPort          = 5050
	defaultSessionMaxAge = 60 // minutes
)

func GetName() string {
	return "gopress"
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("GOPRESS_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(strings.ToLower(logLevel))
}

func IsDebug() bool {
	return os.Getenv("GOPRESS_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("GOPRESS_LISTEN")
}

func GetPort() int {
	port := os.Getenv("GOPRESS_PORT")
	if port == "" {
		return defaultPort
	}
	n, err := strconv.Atoi(port)
	if err != nil || n <= 0 || n > 65535 {
		return defaultPort
	}
	return n
}

// GetSessionSecret returns the key used to sign session cookies. Empty
// means the caller must generate an ephemeral one; sessions then do not
// survive a process restart.
func GetSessionSecret() string {
	return os.Getenv("GOPRESS_SESSION_SECRET")
}

// GetSessionMaxAge returns the session lifetime in minutes.
func GetSessionMaxAge() int {
	age := os.Getenv("GOPRESS_SESSION_MAX_AGE")
	if age == "" {
		return defaultSessionMaxAge
	}
	n, err := strconv.Atoi(age)
	if err != nil || n <= 0 {
		return defaultSessionMaxAge
	}
	return n
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("GOPRESS_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

// GetLogFolder returns the directory for the log file. Empty disables
// file logging and keeps console output only.
func GetLogFolder() string {
	return os.Getenv("GOPRESS_LOG_FOLDER")
}
