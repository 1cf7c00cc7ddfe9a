// Package config loads, normalizes, and validates mpd2html configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts) and
// reads TOML files from ~/.config/mpd2html/config.toml or ./mpd2html.toml.
// Validation checks enum values against the catalog package so a bad sort
// attribute, encoding label or severity override fails at load time rather
// than halfway through a batch.
package config
