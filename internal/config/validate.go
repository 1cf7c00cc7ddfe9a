package config

import (
	"errors"
	"fmt"

	"mpd2html/internal/catalog"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("validation.severity: %w", err)
	}
	return nil
}

func (c *Config) validateInput() error {
	if _, err := catalog.LookupEncoding(c.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateRender() error {
	if len(c.Render.Pages) == 0 {
		return errors.New("render.pages must list at least one page")
	}
	if _, err := c.SortAttributes(); err != nil {
		return err
	}
	return nil
}
