// Package config loads the evaluation constants (K and per-indicator
// goals) from a YAML profile, merged over the regulatory defaults.
package config

import (
	"fmt"

	"github.com/seg-tools/sso-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

type goalSpec struct {
	Value     float64 `mapstructure:"value"`
	Direction string  `mapstructure:"direction"`
}

type file struct {
	K     *float64            `mapstructure:"k"`
	Goals map[string]goalSpec `mapstructure:"goals"`
}

// Load reads the profile at path and merges it over DefaultConfig. An
// empty path returns the defaults unchanged. The merged configuration is
// validated before it is returned; a negative K or goal is fatal.
func Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return domain.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var f file
	if err := v.Unmarshal(&f); err != nil {
		return domain.Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if f.K != nil {
		cfg.K = *f.K
	}
	for name, spec := range f.Goals {
		code := domain.Code(name)
		goal, ok := cfg.Goals[code]
		if !ok {
			return domain.Config{}, fmt.Errorf("unknown indicator code %q in config", name)
		}
		goal.Value = spec.Value
		if spec.Direction != "" {
			goal.Direction = domain.GoalDirection(spec.Direction)
		}
		cfg.Goals[code] = goal
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}
