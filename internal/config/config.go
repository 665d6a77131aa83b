package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/folkapp/folk-mcp/internal/folk"
)

// Config holds all server configuration. It is read once at process start
// and never mutated afterwards.
type Config struct {
	APIKey        string
	BaseURL       string
	FilteredTools string
}

// Load reads configuration from environment variables (and an optional
// config file) and validates the required fields.
func Load() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing required environment variable: FOLK_API_KEY")
	}

	return cfg, nil
}

// LoadLenient reads configuration without requiring the API key. Used by
// commands that only inspect the tool registry and never call the API.
func LoadLenient() *Config {
	cfg, err := load()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read configuration, using defaults")
		return &Config{BaseURL: folk.DefaultBaseURL}
	}
	return cfg
}

func load() (*Config, error) {
	v := viper.New()

	v.SetDefault("BaseURL", folk.DefaultBaseURL)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envMappings := map[string]string{
		"APIKey":        "FOLK_API_KEY",
		"BaseURL":       "FOLK_API_BASE_URL",
		"FilteredTools": "FOLK_FILTERED_TOOLS",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", envVar, err)
		}
	}

	v.SetConfigName("folk_mcp")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.folk-mcp")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Debug().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return &cfg, nil
}
