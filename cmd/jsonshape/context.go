package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/leofalp/jsonshape/core/extract"
	"github.com/leofalp/jsonshape/core/parse"
	"github.com/leofalp/jsonshape/internal/config"
	"github.com/leofalp/jsonshape/providers/observability/slogobs"
)

type commandContext struct {
	configFlag *string
	repairFlag *string
	jsonOutput *bool

	once      sync.Once
	config    *config.Config
	observer  *slogobs.Observer
	extractor *extract.Extractor
	err       error
}

func newCommandContext(configFlag, repairFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		repairFlag: repairFlag,
	}
}

// ensureExtractor loads the profile once and builds the extractor from it.
// Logs go to the command's stderr.
func (c *commandContext) ensureExtractor(cmd *cobra.Command) (*extract.Extractor, error) {
	c.once.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.err = err
			return
		}
		if c.repairFlag != nil && strings.TrimSpace(*c.repairFlag) != "" {
			mode, err := parse.ParseMode(*c.repairFlag)
			if err != nil {
				c.err = err
				return
			}
			cfg.Repair = mode.String()
		}

		opts, err := cfg.Options()
		if err != nil {
			c.err = err
			return
		}
		c.observer = newObserver(cfg, cmd.ErrOrStderr())
		c.config = cfg
		c.extractor = extract.New(append(opts, extract.WithObserver(c.observer))...)
	})
	return c.extractor, c.err
}

// newObserver honours JSONSHAPE_LOG_LEVEL and JSONSHAPE_LOG_FORMAT (or their
// LOG_ counterparts) over the profile's logging section.
func newObserver(cfg *config.Config, out io.Writer) *slogobs.Observer {
	level := slog.LevelWarn
	if cfg.Logging.Level != "" {
		level = slogobs.ParseLogLevel(cfg.Logging.Level)
	}
	if envSet("JSONSHAPE_LOG_LEVEL", "LOG_LEVEL") {
		level = slogobs.GetLogLevelFromEnv()
	}
	format := slogobs.ParseFormat(cfg.Logging.Format)
	if envSet("JSONSHAPE_LOG_FORMAT", "LOG_FORMAT") {
		format = slogobs.GetFormatFromEnv()
	}
	return slogobs.New(
		slogobs.WithLevel(level),
		slogobs.WithFormat(format),
		slogobs.WithOutput(out),
	)
}

func envSet(names ...string) bool {
	for _, name := range names {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

func (c *commandContext) wantJSON() bool {
	return c.jsonOutput != nil && *c.jsonOutput
}

func (c *commandContext) printStats(cmd *cobra.Command) error {
	if c.observer == nil {
		return nil
	}
	samples := c.observer.Snapshot()
	rows := make([][]string, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, []string{s.Name, s.Labels, strconv.FormatInt(s.Value, 10)})
	}
	out := cmd.ErrOrStderr()
	if len(rows) == 0 {
		fmt.Fprintln(out, "No extraction counters recorded")
		return nil
	}
	fmt.Fprintln(out, renderTable([]string{"Metric", "Labels", "Count"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight}))
	return nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// readInput joins the arguments, or reads stdin when there are none or the
// only argument is "-". A single trailing newline from stdin is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, nil
}
