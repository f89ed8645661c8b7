package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	OpenRouter OpenRouterConfig
	Search     SearchConfig
	Locale     LocaleConfig
	RateLimit  RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OpenRouterConfig holds completion service configuration
type OpenRouterConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Referer string        `mapstructure:"referer"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SearchConfig holds web search provider configuration
type SearchConfig struct {
	SerperAPIKey  string        `mapstructure:"serper_api_key"`
	SerperBaseURL string        `mapstructure:"serper_base_url"`
	DDGBaseURL    string        `mapstructure:"ddg_base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// LocaleConfig holds extraction locale defaults
type LocaleConfig struct {
	DefaultLocale  string `mapstructure:"default_locale"`
	DefaultCountry string `mapstructure:"default_country"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/sahulat/")

	v.SetEnvPrefix("SAHULAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Completion service defaults. The API key defaults to empty: the
	// pipeline degrades instead of refusing to start.
	v.SetDefault("openrouter.api_key", "")
	v.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("openrouter.referer", "https://sahulat-ai.vercel.app")
	v.SetDefault("openrouter.timeout", "30s")

	// Search provider defaults
	v.SetDefault("search.serper_api_key", "")
	v.SetDefault("search.serper_base_url", "https://google.serper.dev")
	v.SetDefault("search.ddg_base_url", "https://api.duckduckgo.com")
	v.SetDefault("search.timeout", "10s")

	// Locale defaults
	v.SetDefault("locale.default_locale", "en")
	v.SetDefault("locale.default_country", "Pakistan")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Locale.DefaultLocale != "en" && config.Locale.DefaultLocale != "ur" {
		return fmt.Errorf("default locale must be 'en' or 'ur', got: %s", config.Locale.DefaultLocale)
	}

	if config.Locale.DefaultCountry == "" {
		return fmt.Errorf("default country is required")
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit.per_ip must be positive, got: %d", config.RateLimit.PerIP)
	}

	return nil
}
