package config

import (
	"github.com/arthur-debert/itemexpr/pkg/identity"
)

// Log holds logging settings.
type Log struct {
	Verbosity int `koanf:"verbosity"`
}

// Random holds the random source settings for implied removal.
type Random struct {
	// Seed of the PCG source. Zero means seed from the clock.
	Seed uint64 `koanf:"seed"`
}

// Expressions holds settings for loading expression documents.
type Expressions struct {
	DefaultPath string `koanf:"default_path"`
}

// Config is the tool configuration.
type Config struct {
	Log         Log               `koanf:"log"`
	Random      Random            `koanf:"random"`
	Expressions Expressions       `koanf:"expressions"`
	Identities  map[string]string `koanf:"identities"`
}

// Resolver builds the identity table from the identities section.
func (c *Config) Resolver() (*identity.StaticResolver, error) {
	return identity.FromMap(c.Identities)
}
