package slogobs

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/leofalp/jsonshape/providers/observability"
)

// Observer implements observability.Provider using Go's standard library slog.
// Counters are kept in memory per name and label set so a short-lived process
// can report them with [Observer.Snapshot] before exiting.
type Observer struct {
	logger   *slog.Logger
	mu       sync.Mutex
	counters map[string]*counter
}

// New creates a new slog-based observer with functional options.
// Without options it reads JSONSHAPE_LOG_FORMAT and JSONSHAPE_LOG_LEVEL and
// writes compact lines to stderr.
//
//	observer := slogobs.New(
//	    slogobs.WithFormat(slogobs.FormatJSON),
//	    slogobs.WithLevel(slog.LevelDebug),
//	)
func New(opts ...Option) *Observer {
	cfg := applyOptions(opts...)

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(NewHandler(&HandlerOptions{
			Format: cfg.format,
			Level:  cfg.level,
			Output: cfg.output,
			Colors: cfg.colors,
		}))
	}

	return &Observer{
		logger:   logger,
		counters: make(map[string]*counter),
	}
}

var _ observability.Provider = (*Observer)(nil)

// --- METRICS ---

// Counter returns the named counter, creating it on first use.
// Each Add emits a debug log entry with the delta and the running total for
// its label set.
func (o *Observer) Counter(name string) observability.Counter {
	o.mu.Lock()
	defer o.mu.Unlock()

	c, ok := o.counters[name]
	if !ok {
		c = &counter{name: name, logger: o.logger, values: make(map[string]int64)}
		o.counters[name] = c
	}
	return c
}

// Sample is one counter value for one label set.
type Sample struct {
	Name   string
	Labels string // "k=v,k=v" sorted by key, empty when unlabelled
	Value  int64
}

// Snapshot returns every counter value sorted by name and labels.
func (o *Observer) Snapshot() []Sample {
	o.mu.Lock()
	counters := make([]*counter, 0, len(o.counters))
	for _, c := range o.counters {
		counters = append(counters, c)
	}
	o.mu.Unlock()

	var samples []Sample
	for _, c := range counters {
		c.mu.Lock()
		for labels, v := range c.values {
			samples = append(samples, Sample{Name: c.name, Labels: labels, Value: v})
		}
		c.mu.Unlock()
	}
	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Name != samples[j].Name {
			return samples[i].Name < samples[j].Name
		}
		return samples[i].Labels < samples[j].Labels
	})
	return samples
}

type counter struct {
	name   string
	logger *slog.Logger
	mu     sync.Mutex
	values map[string]int64
}

// Add increments the counter for the label set formed by attrs.
func (c *counter) Add(ctx context.Context, value int64, attrs ...observability.Attribute) {
	labels := labelKey(attrs)

	c.mu.Lock()
	c.values[labels] += value
	total := c.values[labels]
	c.mu.Unlock()

	logAttrs := []slog.Attr{
		slog.String("metric", c.name),
		slog.Int64("value", total),
		slog.Int64("delta", value),
	}
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, "Counter", logAttrs...)
}

func labelKey(attrs []observability.Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, len(attrs))
	for i, attr := range attrs {
		parts[i] = attr.Key + "=" + toString(attr.Value)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case interface{ String() string }:
		return t.String()
	default:
		return slog.AnyValue(v).String()
	}
}

// --- LOGGING ---

// Debug logs a message at DEBUG level with optional structured attributes.
func (o *Observer) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs a message at INFO level with optional structured attributes.
func (o *Observer) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs a message at WARN level with optional structured attributes.
func (o *Observer) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelWarn, msg, attrs...)
}

// Error logs a message at ERROR level with optional structured attributes.
func (o *Observer) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelError, msg, attrs...)
}

func (o *Observer) log(ctx context.Context, level slog.Level, msg string, attrs ...observability.Attribute) {
	if !o.logger.Enabled(ctx, level) {
		return
	}
	logAttrs := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	o.logger.LogAttrs(ctx, level, msg, logAttrs...)
}
