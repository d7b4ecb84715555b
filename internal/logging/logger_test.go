package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphile-codegen/internal/config"
)

func TestSetup_Levels(t *testing.T) {
	tests := []struct {
		level        string
		debugEnabled bool
	}{
		{"debug", true},
		{"info", false},
		{"warn", false},
		{"unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := Setup(config.LoggingConfig{Level: tt.level, Format: "text"})
			require.NotNil(t, logger)
			assert.Equal(t, tt.debugEnabled, logger.Enabled(context.Background(), slog.LevelDebug))
			assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
		})
	}
}

func TestSetup_InstallsDefault(t *testing.T) {
	logger := Setup(config.LoggingConfig{Level: "warn", Format: "json"})
	assert.Same(t, logger.Handler(), slog.Default().Handler())
}
