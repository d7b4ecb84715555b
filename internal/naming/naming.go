// Package naming provides the inflection helpers table inference depends on:
// pluralization, singularization, and GraphQL casing. Convention matching
// round-trips names through these functions, so irregular plurals
// ("Person" -> "People") must resolve correctly.
package naming

import "strings"

// Config holds naming customization options.
type Config struct {
	// PluralOverrides maps singular -> custom plural
	// Example: {"schema": "schemata", "status": "statuses"}
	PluralOverrides map[string]string `mapstructure:"plural_overrides"`

	// SingularOverrides maps plural -> custom singular
	// Example: {"schemata": "schema", "data": "datum"}
	SingularOverrides map[string]string `mapstructure:"singular_overrides"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		PluralOverrides:   make(map[string]string),
		SingularOverrides: make(map[string]string),
	}
}

// Namer provides name transformation functions for matching PostGraphile
// naming conventions: pluralization with overrides plus camel-case flips.
type Namer struct {
	config Config
}

// New creates a Namer with the given configuration
func New(cfg Config) *Namer {
	return &Namer{config: cfg}
}

// Default returns a Namer with default configuration
func Default() *Namer {
	return New(DefaultConfig())
}

// LowerCamel lower-cases the first letter of a GraphQL name.
// Example: "UserProfile" -> "userProfile"
func (n *Namer) LowerCamel(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// UpperCamel upper-cases the first letter of a GraphQL name.
// Example: "userProfile" -> "UserProfile"
func (n *Namer) UpperCamel(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
