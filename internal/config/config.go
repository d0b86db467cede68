// Package config provides configuration loading for the OpenAPI codec.
package config

import (
	"fmt"

	configloader "github.com/GabrielNunesIT/go-libs/config-loader"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "OPENAPI_CODEC_"

// Config holds the application configuration.
type Config struct {
	// DefaultScheme is used for decoded base URLs when the description has a
	// host but no schemes.
	DefaultScheme string `koanf:"default_scheme"`
	// Indent is the indentation of JSON output. Empty means compact.
	Indent string `koanf:"indent"`
	// DocumentFormat is the default output format of decoded documents.
	DocumentFormat string `koanf:"document_format"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		DefaultScheme:  "http",
		Indent:         "  ",
		DocumentFormat: "yaml",
	}
}

// Load returns the application configuration using go-libs config-loader.
// Environment variables prefixed with OPENAPI_CODEC_ override the defaults.
func Load() (*Config, error) {
	loader := configloader.NewConfigLoader(
		configloader.WithDefaults(Defaults()),
		configloader.WithEnv[Config](EnvPrefix),
	)

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration holds supported values.
func (c Config) Validate() error {
	switch c.DefaultScheme {
	case "http", "https":
	default:
		return fmt.Errorf("unsupported default scheme %q (supported: http, https)", c.DefaultScheme)
	}

	switch c.DocumentFormat {
	case "yaml", "json":
	default:
		return fmt.Errorf("unsupported document format %q (supported: yaml, json)", c.DocumentFormat)
	}

	return nil
}
