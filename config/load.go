package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Load reads a config file (YAML/TOML/JSON, decided by extension), fills
// in Default() for any key the file omits and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}
