package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"graphile-codegen/internal/schemasource"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Source.Endpoint = "https://api.example.com/graphql"
	cfg.Source.Timeout = 30 * time.Second
	cfg.Output.Format = "json"
	cfg.Logging.Level = "info"
	return cfg
}

func TestValidate_Valid(t *testing.T) {
	result := validConfig().Validate()
	assert.False(t, result.HasErrors())
	assert.Empty(t, result.Warnings)
}

func TestValidate_NoSource(t *testing.T) {
	cfg := validConfig()
	cfg.Source.Endpoint = ""

	result := cfg.Validate()
	assert.True(t, result.HasErrors())
	assert.Contains(t, result.Error(), "no schema source configured")
}

func TestValidate_MultipleSources(t *testing.T) {
	cfg := validConfig()
	cfg.Source.File = "introspection.json"

	result := cfg.Validate()
	assert.True(t, result.HasErrors())
	assert.Contains(t, result.Error(), "multiple schema sources")
}

func TestValidate_EndpointScheme(t *testing.T) {
	cfg := validConfig()
	cfg.Source.Endpoint = "ftp://example.com/graphql"

	result := cfg.Validate()
	assert.True(t, result.HasErrors())
	assert.Contains(t, result.Error(), "not an http(s) URL")
}

func TestValidate_MalformedHeader(t *testing.T) {
	cfg := validConfig()
	cfg.Source.Headers = []string{"Authorization Bearer x"}

	result := cfg.Validate()
	assert.True(t, result.HasErrors())
	assert.Contains(t, result.Error(), "malformed header")
}

func TestValidate_HeadersWithoutEndpointWarns(t *testing.T) {
	cfg := validConfig()
	cfg.Source = schemasource.Config{File: "introspection.json", Headers: []string{"X-Y: z"}}

	result := cfg.Validate()
	assert.False(t, result.HasErrors())
	assert.Len(t, result.Warnings, 1)
}

func TestValidate_OutputFormat(t *testing.T) {
	tests := []struct {
		format string
		ok     bool
	}{
		{"json", true},
		{"yaml", true},
		{"summary", true},
		{"", false},
		{"xml", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cfg := validConfig()
			cfg.Output.Format = tt.format
			assert.Equal(t, !tt.ok, cfg.Validate().HasErrors())
		})
	}
}

func TestValidate_UnknownLogLevelWarns(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"

	result := cfg.Validate()
	assert.False(t, result.HasErrors())
	assert.Len(t, result.Warnings, 1)
}

func TestValidationError_Format(t *testing.T) {
	err := ValidationError{Field: "source", Message: "broken", Hint: "fix it"}
	assert.Equal(t, "source: broken (hint: fix it)", err.Error())

	err = ValidationError{Field: "source", Message: "broken"}
	assert.Equal(t, "source: broken", err.Error())
}
