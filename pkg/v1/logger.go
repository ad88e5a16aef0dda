package v1

import (
	"fmt"
	"log"
	"sync"
)

// LogType defines the category of the log.
type LogType string

const (
	LogTypeStep   LogType = "Step"
	LogTypeApp    LogType = "App"
	LogTypeWidget LogType = "Widget"
	LogTypeTimer  LogType = "Timer"
	LogTypeAsset  LogType = "Asset"
	LogTypeScript LogType = "Script"
	LogTypeError  LogType = "Error"
	LogTypeInfo   LogType = "Info"
)

// Console glyphs. Smoke scripts are read by a human watching the terminal,
// so every milestone line leads with a status marker.
const (
	GlyphOK    = "✅"
	GlyphFail  = "❌"
	GlyphFile  = "📁"
	GlyphCheck = "🔍"
)

// LogEntry represents a single log event.
type LogEntry struct {
	Type    LogType
	Summary string
	Detail  string
}

// LogHandler is a function that handles log entries (e.g., a UI updater
// or a test recorder).
type LogHandler func(entry LogEntry)

var (
	logHandlers []LogHandler
	logMu       sync.Mutex
)

// RegisterLogHandler adds a handler for log events.
func RegisterLogHandler(h LogHandler) {
	logMu.Lock()
	defer logMu.Unlock()
	logHandlers = append(logHandlers, h)
}

// Log records a log entry and notifies handlers.
func Log(t LogType, summary string, detail string) {
	// 1. Print to standard console for debugging/history
	if detail != "" {
		log.Printf("[%s] %s - %s", t, summary, detail)
	} else {
		log.Printf("[%s] %s", t, summary)
	}

	// 2. Notify handlers
	entry := LogEntry{
		Type:    t,
		Summary: summary,
		Detail:  detail,
	}

	logMu.Lock()
	defer logMu.Unlock()
	for _, h := range logHandlers {
		// Call handler directly. Handlers should handle concurrency (e.g. fyne.Do)
		h(entry)
	}
}

// Logf is a helper to log formatted simple info.
func Logf(t LogType, format string, v ...interface{}) {
	Log(t, fmt.Sprintf(format, v...), "")
}

// Milestone prints a glyph-prefixed progress line straight to stdout and
// mirrors it into the log stream. These lines are the primary output of a
// smoke script; they are informational only, never machine-parsed.
func Milestone(glyph, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	fmt.Printf("%s %s\n", glyph, msg)
	Log(LogTypeStep, msg, "")
}
