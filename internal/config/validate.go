package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
	Hint    string
}

// ValidationResult contains the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a combined error message if there are validation errors.
func (r *ValidationResult) Error() string {
	if !r.HasErrors() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

var validFormats = map[string]bool{"json": true, "yaml": true, "summary": true}
var validLogLevels = map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}

// Validate checks the configuration and returns both errors (fatal) and
// warnings (non-fatal issues).
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}

	sourcesSet := 0
	for _, s := range []string{c.Source.Endpoint, c.Source.File, c.Source.SDLFile} {
		if s != "" {
			sourcesSet++
		}
	}
	switch {
	case sourcesSet == 0:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "source",
			Message: "no schema source configured",
			Hint:    "set --endpoint, --file, or --sdl",
		})
	case sourcesSet > 1:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "source",
			Message: "multiple schema sources configured",
			Hint:    "set exactly one of --endpoint, --file, --sdl",
		})
	}

	if c.Source.Endpoint != "" && !strings.HasPrefix(c.Source.Endpoint, "http://") && !strings.HasPrefix(c.Source.Endpoint, "https://") {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "source.endpoint",
			Message: fmt.Sprintf("endpoint %q is not an http(s) URL", c.Source.Endpoint),
		})
	}
	for _, header := range c.Source.Headers {
		if !strings.Contains(header, ":") {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "source.headers",
				Message: fmt.Sprintf("malformed header %q", header),
				Hint:    "use \"Name: value\"",
			})
		}
	}
	if len(c.Source.Headers) > 0 && c.Source.Endpoint == "" {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "source.headers",
			Message: "headers are only used with an endpoint source",
		})
	}

	if !validFormats[c.Output.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("unknown output format %q", c.Output.Format),
			Hint:    "use json, yaml, or summary",
		})
	}

	if !validLogLevels[c.Logging.Level] {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown log level %q, using info", c.Logging.Level),
		})
	}

	return result
}
