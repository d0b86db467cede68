package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http", cfg.DefaultScheme)
	assert.Equal(t, "  ", cfg.Indent)
	assert.Equal(t, "yaml", cfg.DocumentFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"https scheme", func(c *Config) { c.DefaultScheme = "https" }, false},
		{"json documents", func(c *Config) { c.DocumentFormat = "json" }, false},
		{"compact indent", func(c *Config) { c.Indent = "" }, false},
		{"unknown scheme", func(c *Config) { c.DefaultScheme = "ftp" }, true},
		{"empty scheme", func(c *Config) { c.DefaultScheme = "" }, true},
		{"unknown format", func(c *Config) { c.DocumentFormat = "toml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
