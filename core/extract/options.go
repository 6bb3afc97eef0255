package extract

import (
	"github.com/leofalp/jsonshape/core/parse"
	"github.com/leofalp/jsonshape/providers/observability"
)

// Option configures an Extractor.
type Option func(*config)

type config struct {
	maxDepth        int
	titlePrimary    []string
	titleSecondary  []string
	descriptionKeys []string
	tagKeys         []string
	placeholders    []string
	pendingMarkers  []string
	shortTagLimit   int
	mode            parse.Mode
	scheduleRule    bool
	markdown        bool
	synthesize      bool
	unfence         bool
	observer        observability.Provider
}

func defaultConfig() *config {
	return &config{
		maxDepth:        DefaultMaxDepth,
		titlePrimary:    cloneKeys(TitlePrimaryKeys),
		titleSecondary:  cloneKeys(TitleSecondaryKeys),
		descriptionKeys: cloneKeys(DescriptionKeys),
		tagKeys:         cloneKeys(TagKeys),
		placeholders:    cloneKeys(TitlePlaceholders),
		pendingMarkers:  cloneKeys(PendingMarkers),
		shortTagLimit:   DefaultShortTagLimit,
		mode:            parse.ModeStrict,
		scheduleRule:    true,
	}
}

// WithMaxDepth sets the deepest nesting level searched. Negative values are
// treated as 0 (root only).
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth < 0 {
			depth = 0
		}
		c.maxDepth = depth
	}
}

// WithTitleKeys replaces the primary and secondary title key tiers.
func WithTitleKeys(primary, secondary []string) Option {
	return func(c *config) {
		c.titlePrimary = cloneKeys(primary)
		c.titleSecondary = cloneKeys(secondary)
	}
}

// WithDescriptionKeys replaces the description key list.
func WithDescriptionKeys(keys ...string) Option {
	return func(c *config) {
		c.descriptionKeys = cloneKeys(keys)
	}
}

// WithTagKeys replaces the tag key list.
func WithTagKeys(keys ...string) Option {
	return func(c *config) {
		c.tagKeys = cloneKeys(keys)
	}
}

// WithPlaceholders replaces the placeholder phrases rejected in titles.
func WithPlaceholders(phrases ...string) Option {
	return func(c *config) {
		c.placeholders = cloneKeys(phrases)
	}
}

// WithPendingMarkers replaces the prefixes that mark a title as in progress.
func WithPendingMarkers(markers ...string) Option {
	return func(c *config) {
		c.pendingMarkers = cloneKeys(markers)
	}
}

// WithShortTagLimit sets the rune count below which comma-free text is kept
// as one tag.
func WithShortTagLimit(limit int) Option {
	return func(c *config) {
		c.shortTagLimit = limit
	}
}

// WithRepairMode selects how structured-looking input is parsed. The default
// is parse.ModeStrict.
func WithRepairMode(mode parse.Mode) Option {
	return func(c *config) {
		c.mode = mode
	}
}

// WithScheduleRule toggles the schedule-document fallback for titles: a root
// object with a schedule body and a week identifier yields that identifier
// when no title key matched. Enabled by default.
func WithScheduleRule(enabled bool) Option {
	return func(c *config) {
		c.scheduleRule = enabled
	}
}

// WithMarkdown converts recovered descriptions that contain HTML markup to
// Markdown.
func WithMarkdown(enabled bool) Option {
	return func(c *config) {
		c.markdown = enabled
	}
}

// WithSynthesis builds a description from a script's hook and scene
// narrations when no description key matches.
func WithSynthesis(enabled bool) Option {
	return func(c *config) {
		c.synthesize = enabled
	}
}

// WithFenceUnwrap treats text wrapped in a single Markdown code fence as the
// document inside it when that body parses. A fence whose body does not parse
// is handled as plain text. Disabled by default.
func WithFenceUnwrap(enabled bool) Option {
	return func(c *config) {
		c.unfence = enabled
	}
}

// WithObserver attaches an observability provider. Every call is counted under
// observability.MetricExtractCount and parse failures are logged at debug
// level.
func WithObserver(observer observability.Provider) Option {
	return func(c *config) {
		c.observer = observer
	}
}
