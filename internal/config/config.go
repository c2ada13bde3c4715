// Package config loads boundctl settings from config.yaml using Viper and
// writes the default file on init.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/bounded/pkg/types"
)

const (
	fileName = "config"
	fileType = "yaml"
	fileExt  = "config.yaml"

	envPrefix = "BOUNDED"
)

// Config keys.
const (
	KeyCapacity = "capacity"
	KeyTerms    = "terms"
	KeyDataDir  = "data_dir"
	KeyLogLevel = "log_level"
)

// Path returns the location of config.yaml inside configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, fileExt)
}

// Load reads config.yaml from configDir, applies defaults and environment
// overrides (BOUNDED_CAPACITY, BOUNDED_TERMS, BOUNDED_LOG_LEVEL), and
// validates the result. A missing config.yaml is not an error.
func Load(configDir string) (types.Config, error) {
	v := newViper(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func newViper(configDir string) *viper.Viper {
	defaults := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(KeyCapacity, defaults.Capacity)
	v.SetDefault(KeyTerms, defaults.Terms)
	v.SetDefault(KeyDataDir, "")
	v.SetDefault(KeyLogLevel, defaults.LogLevel)

	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(configDir)

	// data_dir is left out: BOUNDED_DATA_DIR ranks below the file value and
	// is applied by paths.ResolveDataDir.
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{KeyCapacity, KeyTerms, KeyLogLevel} {
		_ = v.BindEnv(key)
	}
	return v
}

// WriteDefault creates configDir and writes cfg to config.yaml unless the
// file already exists. It reports whether a file was written.
func WriteDefault(configDir string, cfg types.Config) (bool, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}

	path := Path(configDir)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
