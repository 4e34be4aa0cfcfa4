// Package config loads sha1gen's optional configuration file.
package config

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the sha1gen configuration
type Config struct {
	Generate GenerateConfig `mapstructure:"generate"`
	Hash     HashConfig     `mapstructure:"hash"`
}

// GenerateConfig configures the generate command
type GenerateConfig struct {
	// Suffix is appended to source file base names to form generated
	// file names (app.go -> app<suffix>.go).
	Suffix string `mapstructure:"suffix"`

	// Paths are the default paths scanned when none are given on the
	// command line.
	Paths []string `mapstructure:"paths"`
}

// HashConfig configures the hash command
type HashConfig struct {
	// Encoding is the default output encoding: hex, base64, or bytes.
	Encoding string `mapstructure:"encoding"`
}

// Load loads the configuration from sha1gen.yml or sha1gen.yaml in the
// current directory, falling back to defaults when no file exists.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("generate.suffix", "_sha1gen")
	v.SetDefault("generate.paths", []string{"."})
	v.SetDefault("hash.encoding", "hex")

	v.SetConfigName("sha1gen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support: SHA1GEN_GENERATE_SUFFIX etc.
	v.SetEnvPrefix("sha1gen")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	// The suffix only ever becomes part of a file name, but it must keep
	// the generated file a valid Go file name.
	if config.Generate.Suffix == "" {
		return fmt.Errorf("generate.suffix must not be empty")
	}
	if !token.IsIdentifier(strings.TrimPrefix(config.Generate.Suffix, "_")) {
		return fmt.Errorf("generate.suffix %q must be an identifier fragment like _sha1gen", config.Generate.Suffix)
	}

	switch config.Hash.Encoding {
	case "hex", "base64", "bytes":
	default:
		return fmt.Errorf("hash.encoding %q is invalid (expected hex, base64, or bytes)", config.Hash.Encoding)
	}

	if len(config.Generate.Paths) == 0 {
		return fmt.Errorf("generate.paths must not be empty")
	}

	return nil
}
