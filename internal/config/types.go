// Package config loads and validates tool configuration from flags,
// environment variables, an optional .env file, and an optional YAML config
// file, with precedence flags > env > file > defaults.
package config

import (
	"graphile-codegen/internal/naming"
	"graphile-codegen/internal/schemafilter"
	"graphile-codegen/internal/schemasource"
)

// Config holds the application configuration.
type Config struct {
	Source  schemasource.Config `mapstructure:"source"`
	Output  OutputConfig        `mapstructure:"output"`
	Filters schemafilter.Config `mapstructure:"filters"`
	Naming  naming.Config       `mapstructure:"naming"`
	Logging LoggingConfig       `mapstructure:"logging"`
}

// OutputConfig controls where and how inferred tables are emitted.
type OutputConfig struct {
	// Format is one of "json", "yaml", or "summary".
	Format string `mapstructure:"format"`
	// Path is the output file; empty means stdout.
	Path string `mapstructure:"path"`
	// NoColor disables ANSI colors in the summary format.
	NoColor bool `mapstructure:"no_color"`
}

// LoggingConfig controls the slog backend.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}
