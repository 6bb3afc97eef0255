package config

import (
	"errors"
	"fmt"

	"github.com/leofalp/jsonshape/core/parse"
)

// Validate ensures the profile is usable.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return errors.New("max_depth must not be negative")
	}
	if c.ShortTagLimit <= 0 {
		return errors.New("short_tag_limit must be positive")
	}
	if _, err := parse.ParseMode(c.Repair); err != nil {
		return fmt.Errorf("repair: %w", err)
	}
	if len(c.Title.PrimaryKeys) == 0 && len(c.Title.SecondaryKeys) == 0 {
		return errors.New("title.primary_keys and title.secondary_keys must not both be empty")
	}
	if len(c.Description.Keys) == 0 {
		return errors.New("description.keys must not be empty")
	}
	if len(c.Tags.Keys) == 0 {
		return errors.New("tags.keys must not be empty")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "compact", "json":
	default:
		return fmt.Errorf("logging.format %q must be compact or json", c.Logging.Format)
	}
	return nil
}
