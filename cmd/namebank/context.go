package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"namebank/internal/config"
	"namebank/internal/history"
	"namebank/internal/logging"
)

type commandContext struct {
	configFlag   *string
	databaseFlag *string
	jsonFlag     *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, databaseFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		databaseFlag: databaseFlag,
		jsonFlag:     jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.databaseFlag != nil && strings.TrimSpace(*c.databaseFlag) != "" {
			expanded, err := config.ExpandPath(*c.databaseFlag)
			if err != nil {
				c.configErr = fmt.Errorf("resolve database path: %w", err)
				return
			}
			cfg.Paths.Database = expanded
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// openHistory returns the run-history store, or nil when history is disabled.
// Open failures degrade to a warning so a broken history database never
// blocks the database operations themselves.
func (c *commandContext) openHistory(logger *slog.Logger) *history.Store {
	cfg, err := c.ensureConfig()
	if err != nil || !cfg.History.Enabled {
		return nil
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		if logger != nil {
			logger.Warn("failed to open history database",
				logging.String("path", cfg.History.Path),
				logging.Error(err))
		}
		return nil
	}
	return store
}

func (c *commandContext) jsonMode() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
