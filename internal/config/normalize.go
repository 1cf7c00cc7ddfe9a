package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeInput()
	c.normalizeLogging()
	c.normalizeRender()
	c.normalizeValidation()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.AssetsDir, err = expandPath(strings.TrimSpace(c.Paths.AssetsDir)); err != nil {
		return fmt.Errorf("paths.assets_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeInput() {
	c.Input.Encoding = strings.ToLower(strings.TrimSpace(c.Input.Encoding))
	if c.Input.Encoding == "" {
		c.Input.Encoding = Default().Input.Encoding
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}

func (c *Config) normalizeRender() {
	seen := make(map[string]struct{}, len(c.Render.Pages))
	pages := c.Render.Pages[:0]
	for _, page := range c.Render.Pages {
		page = strings.ToLower(strings.TrimSpace(page))
		if page == "" {
			continue
		}
		if _, dup := seen[page]; dup {
			continue
		}
		seen[page] = struct{}{}
		pages = append(pages, page)
	}
	c.Render.Pages = pages
	c.Render.Title = strings.TrimSpace(c.Render.Title)
	if c.Render.Title == "" {
		c.Render.Title = defaultPageTitle
	}
	if c.Render.Workers <= 0 {
		c.Render.Workers = defaultWorkers
	}
}

func (c *Config) normalizeValidation() {
	if len(c.Validation.Severity) == 0 {
		return
	}
	normalized := make(map[string]string, len(c.Validation.Severity))
	for kind, severity := range c.Validation.Severity {
		normalized[strings.ToLower(strings.TrimSpace(kind))] = strings.ToLower(strings.TrimSpace(severity))
	}
	c.Validation.Severity = normalized
}
