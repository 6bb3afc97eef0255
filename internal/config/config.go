package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/leofalp/jsonshape/core/extract"
	"github.com/leofalp/jsonshape/core/parse"
)

//go:embed sample_config.toml
var sampleConfig string

// Title contains the title search keys, rejection lists and fallback.
type Title struct {
	PrimaryKeys    []string `toml:"primary_keys"`
	SecondaryKeys  []string `toml:"secondary_keys"`
	Placeholders   []string `toml:"placeholders"`
	PendingMarkers []string `toml:"pending_markers"`
	Fallback       string   `toml:"fallback"`
}

// Description contains the description search keys and fallback.
type Description struct {
	Keys     []string `toml:"keys"`
	Fallback string   `toml:"fallback"`
}

// Tags contains the tag search keys.
type Tags struct {
	Keys []string `toml:"keys"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is an extraction profile.
type Config struct {
	MaxDepth               int    `toml:"max_depth"`
	ShortTagLimit          int    `toml:"short_tag_limit"`
	Repair                 string `toml:"repair"`
	ScheduleRule           bool   `toml:"schedule_rule"`
	MarkdownDescriptions   bool   `toml:"markdown_descriptions"`
	SynthesizeDescriptions bool   `toml:"synthesize_descriptions"`
	UnwrapFences           bool   `toml:"unwrap_fences"`

	Title       Title       `toml:"title"`
	Description Description `toml:"description"`
	Tags        Tags        `toml:"tags"`
	Logging     Logging     `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default profile location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/jsonshape/config.toml")
}

// Load locates, parses and validates a profile. When path is empty the default
// location and ./jsonshape.toml are tried in that order. A missing file is not
// an error: the defaults are returned and exists is false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

// Parse decodes a profile from TOML text on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("jsonshape.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

func (c *Config) normalize() {
	c.Repair = strings.ToLower(strings.TrimSpace(c.Repair))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Title.PrimaryKeys = trimKeys(c.Title.PrimaryKeys)
	c.Title.SecondaryKeys = trimKeys(c.Title.SecondaryKeys)
	c.Description.Keys = trimKeys(c.Description.Keys)
	c.Tags.Keys = trimKeys(c.Tags.Keys)
}

// trimKeys drops blank entries. Keys are matched exactly, so inner spacing is kept.
func trimKeys(keys []string) []string {
	out := keys[:0]
	for _, k := range keys {
		if strings.TrimSpace(k) != "" {
			out = append(out, k)
		}
	}
	return out
}

// RepairMode returns the parsed repair mode.
func (c *Config) RepairMode() parse.Mode {
	mode, err := parse.ParseMode(c.Repair)
	if err != nil {
		return parse.ModeStrict
	}
	return mode
}

// Options converts the profile into extractor options.
func (c *Config) Options() ([]extract.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []extract.Option{
		extract.WithMaxDepth(c.MaxDepth),
		extract.WithShortTagLimit(c.ShortTagLimit),
		extract.WithRepairMode(c.RepairMode()),
		extract.WithScheduleRule(c.ScheduleRule),
		extract.WithMarkdown(c.MarkdownDescriptions),
		extract.WithSynthesis(c.SynthesizeDescriptions),
		extract.WithFenceUnwrap(c.UnwrapFences),
		extract.WithTitleKeys(c.Title.PrimaryKeys, c.Title.SecondaryKeys),
		extract.WithPlaceholders(c.Title.Placeholders...),
		extract.WithPendingMarkers(c.Title.PendingMarkers...),
		extract.WithDescriptionKeys(c.Description.Keys...),
		extract.WithTagKeys(c.Tags.Keys...),
	}, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath resolves ~ and relative segments to an absolute path.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes the commented sample profile to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Sample returns the commented sample profile.
func Sample() string {
	return sampleConfig
}
