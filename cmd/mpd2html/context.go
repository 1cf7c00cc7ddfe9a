package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"mpd2html/internal/catalog"
	"mpd2html/internal/config"
	"mpd2html/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// logger builds the command logger. The returned path is the per-run JSON
// log file, empty when paths.log_dir is unset.
func (c *commandContext) logger(console io.Writer) (*slog.Logger, string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, "", err
	}
	logger, logPath, err := logging.NewFromConfig(cfg, console)
	if err != nil {
		return nil, "", fmt.Errorf("configure logging: %w", err)
	}
	return logger, logPath, nil
}

// parser builds a catalog parser from the loaded config.
func (c *commandContext) parser(reporter catalog.Reporter) (*catalog.Parser, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	return catalog.NewParser(
		catalog.WithPolicy(policy),
		catalog.WithReporter(reporter),
		catalog.WithEncoding(cfg.Input.Encoding),
	), nil
}

func expandInputs(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		expanded, err := config.ExpandPath(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("resolve input %q: %w", arg, err)
		}
		paths = append(paths, expanded)
	}
	return paths, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
