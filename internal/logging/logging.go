// Package logging is the leveled logger shared by the converter CLIs.
package logging

import (
	"fmt"
	"log"
	"strings"
)

// Level is a logging verbosity threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var current = LevelInfo

// SetLevel sets the global threshold from a level name. Unknown names
// fall back to info.
func SetLevel(name string) {
	current = ParseLevel(name)
}

// ParseLevel maps a level name to a Level, defaulting to info.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	if current <= LevelDebug {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// Info logs an info message to standard output.
func Info(format string, args ...any) {
	if current <= LevelInfo {
		fmt.Printf(format+"\n", args...)
	}
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	if current <= LevelWarn {
		log.Printf("[WARN] "+format, args...)
	}
}

// Error logs an error message.
func Error(format string, args ...any) {
	if current <= LevelError {
		log.Printf("[ERROR] "+format, args...)
	}
}
