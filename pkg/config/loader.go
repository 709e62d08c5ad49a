package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/logging"
)

const (
	appName    = "itemexpr"
	envPrefix  = "ITEMEXPR_"
	configFile = "config.toml"
)

// UserConfigPath is where the user config file is looked up.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFile)
}

// Load reads the tool configuration from the defaults, the user config file
// and the environment.
func Load() (*Config, error) {
	return LoadFrom(UserConfigPath())
}

// LoadFrom is like Load with an explicit user config path. A missing file is
// not an error.
func LoadFrom(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config if it exists
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
					WithDetail("path", path)
			}
			logger.Debug().Str("path", path).Msg("User config loaded")
		}
	}

	// 3. Environment, ITEMEXPR_SECTION_KEY -> section.key
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.Log.Verbosity < 0 {
		return nil, errors.Newf(errors.ErrConfigParse, "log.verbosity must not be negative, got %d", cfg.Log.Verbosity).
			WithDetail("key", "log.verbosity")
	}
	if _, err := cfg.Resolver(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
