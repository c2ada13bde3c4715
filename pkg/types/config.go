package types

import "errors"

// Config holds the settings boundctl reads from config.yaml.
type Config struct {
	Capacity int    `json:"capacity" yaml:"capacity" mapstructure:"capacity"`
	Terms    int    `json:"terms" yaml:"terms" mapstructure:"terms"`
	DataDir  string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// Defaults applied when config.yaml leaves a key unset.
const (
	DefaultCapacity = 128
	DefaultTerms    = 10
	DefaultLogLevel = "info"
)

// Config validation errors.
var (
	ErrCapacityNotPositive = errors.New("capacity must be positive")
	ErrTermsNotPositive    = errors.New("terms must be positive")
)

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
		Terms:    DefaultTerms,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return ErrCapacityNotPositive
	}
	if c.Terms <= 0 {
		return ErrTermsNotPositive
	}
	return nil
}
