package config

import (
	"github.com/leofalp/jsonshape/core/extract"
)

const (
	defaultRepairMode = "strict"
	defaultLogLevel   = "warn"
	defaultLogFormat  = "compact"
)

// Default returns a profile matching the extractor's built-in behaviour.
func Default() Config {
	return Config{
		MaxDepth:      extract.DefaultMaxDepth,
		ShortTagLimit: extract.DefaultShortTagLimit,
		Repair:        defaultRepairMode,
		ScheduleRule:  true,
		Title: Title{
			PrimaryKeys:    append([]string(nil), extract.TitlePrimaryKeys...),
			SecondaryKeys:  append([]string(nil), extract.TitleSecondaryKeys...),
			Placeholders:   append([]string(nil), extract.TitlePlaceholders...),
			PendingMarkers: append([]string(nil), extract.PendingMarkers...),
			Fallback:       extract.DefaultTitleFallback,
		},
		Description: Description{
			Keys: append([]string(nil), extract.DescriptionKeys...),
		},
		Tags: Tags{
			Keys: append([]string(nil), extract.TagKeys...),
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
