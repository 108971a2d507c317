package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.Database) == "" {
		return errors.New("paths.database must be set")
	}
	if !filepath.IsAbs(c.Paths.Database) {
		return errors.New("paths.database must resolve to an absolute path")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateHistory() error {
	if !c.History.Enabled {
		return nil
	}
	if strings.TrimSpace(c.History.Path) == "" {
		return errors.New("history.path must be set when history.enabled is true")
	}
	return nil
}
