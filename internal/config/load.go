package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var defineFlagsOnce sync.Once

// Load loads configuration from multiple sources with the following precedence:
// 1. Command line flags
// 2. Environment variables (after an optional .env file is applied)
// 3. Config file
// 4. Default values
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	defineFlags()
	if !pflag.Parsed() {
		pflag.Parse()
	}

	// --- .env file ---
	// Missing files are fine; a .env next to the invocation is a
	// convenience for GRAPHILE_CODEGEN_SOURCE_ENDPOINT and friends.
	_ = godotenv.Load()

	// --- Config file ---
	cfgPath, _ := pflag.CommandLine.GetString("config")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigName("graphile-codegen")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.graphile-codegen")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgPath != "" {
			return nil, fmt.Errorf("failed to read config file %q: %w", cfgPath, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// --- Environment variables ---
	// Canonical keys: dot + snake_case
	// Env vars: GRAPHILE_CODEGEN_SOURCE_ENDPOINT
	v.SetEnvPrefix("GRAPHILE_CODEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// --- Flags binding (highest priority) ---
	bindChangedFlagsToViper(v)

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source.timeout", "30s")
	v.SetDefault("output.format", "json")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

func defineFlags() {
	defineFlagsOnce.Do(func() {
		pflag.String("config", "", "Path to config file")
		pflag.String("endpoint", "", "GraphQL endpoint URL to introspect")
		pflag.StringSlice("header", nil, "Extra HTTP header for the endpoint (Name: value), repeatable")
		pflag.String("file", "", "Path to a saved introspection JSON file")
		pflag.String("sdl", "", "Path to a local GraphQL SDL file")
		pflag.Duration("timeout", 0, "Endpoint request timeout")
		pflag.String("format", "", "Output format: json, yaml, or summary")
		pflag.String("out", "", "Output file path (default stdout)")
		pflag.Bool("no-color", false, "Disable colored summary output")
		pflag.String("log-level", "", "Log level: debug, info, warn, error")
		pflag.String("log-format", "", "Log format: json, text")
	})
}

// flagKeys maps flag names to viper config keys.
var flagKeys = map[string]string{
	"endpoint":   "source.endpoint",
	"header":     "source.headers",
	"file":       "source.file",
	"sdl":        "source.sdl_file",
	"timeout":    "source.timeout",
	"format":     "output.format",
	"out":        "output.path",
	"no-color":   "output.no_color",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

// bindChangedFlagsToViper applies only flags the user actually set, so unset
// flags cannot mask env or file values with their zero defaults.
func bindChangedFlagsToViper(v *viper.Viper) {
	pflag.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		if f.Name == "header" {
			values, err := pflag.CommandLine.GetStringSlice("header")
			if err == nil {
				v.Set(key, values)
			}
			return
		}
		v.Set(key, f.Value.String())
	})
}
