package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"mcpack/internal/paths"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// HostBinary is the host tool CLI used to register servers.
	HostBinary string `mapstructure:"host_binary" yaml:"host_binary"`

	// Scope is the registration scope passed to the host tool.
	Scope string `mapstructure:"scope" yaml:"scope"`

	// PatternsFile is the optional custom patterns overlay file.
	PatternsFile string `mapstructure:"patterns_file" yaml:"patterns_file"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support
	viper.SetEnvPrefix("MCPACK")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("host_binary", "claude")
	viper.SetDefault("scope", ScopeUser)
	viper.SetDefault("patterns_file", paths.DefaultPatternsPath())
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back
// to defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// If the user asked for a specific file, its absence is an error.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Implicit load without a file runs on defaults.
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
