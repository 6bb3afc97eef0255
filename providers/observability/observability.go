package observability

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// Provider is the main interface for observability (metrics, logging)
type Provider interface {
	Metrics
	Logger
}

// --- METRICS ---

// Metrics provides metrics collection capabilities
type Metrics interface {
	// Counter creates or retrieves a counter metric
	Counter(name string) Counter
}

// Counter is a monotonically increasing metric
type Counter interface {
	Add(ctx context.Context, value int64, attrs ...Attribute)
}

// --- LOGGING (Structured Logging) ---

// Logger provides structured logging capabilities
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...Attribute)
	Info(ctx context.Context, msg string, attrs ...Attribute)
	Warn(ctx context.Context, msg string, attrs ...Attribute)
	Error(ctx context.Context, msg string, attrs ...Attribute)
}

// --- ATTRIBUTES (Key-Value pairs) ---

// Attribute represents a key-value pair for metadata
type Attribute struct {
	Key   string
	Value interface{}
}

// String creates a string attribute
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error creates an error attribute
func Error(err error) Attribute {
	if err == nil {
		return Attribute{Key: AttrError, Value: ""}
	}
	return Attribute{Key: AttrError, Value: err.Error()}
}

// --- UTILITIES ---

// DefaultPreviewLength is how many runes of an input Preview keeps.
const DefaultPreviewLength = 80

// Preview shortens s to at most maxRunes runes for log output, recording the
// original byte length when it cuts. It never splits a UTF-8 sequence.
// If maxRunes is zero or negative, [DefaultPreviewLength] is used.
func Preview(s string, maxRunes int) string {
	if maxRunes <= 0 {
		maxRunes = DefaultPreviewLength
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	cut := 0
	for i := range s {
		if maxRunes == 0 {
			cut = i
			break
		}
		maxRunes--
	}
	return fmt.Sprintf("%s... (truncated, total: %d bytes)", s[:cut], len(s))
}
