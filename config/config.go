package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all configuration for the Argus service.
type Config struct {
	Dataset struct {
		// Path is the alert dataset file, JSON array or JSONL.
		Path string `mapstructure:"path" validate:"required"`
	} `mapstructure:"dataset"`

	API struct {
		Port           int      `mapstructure:"port" validate:"min=1,max=65535"`
		TLS            bool     `mapstructure:"tls"`
		CertFile       string   `mapstructure:"cert_file"`
		KeyFile        string   `mapstructure:"key_file"`
		AllowedOrigins []string `mapstructure:"allowed_origins"`
		TrustProxy     bool     `mapstructure:"trust_proxy"`

		// DefaultPageSize applies when the client omits limit;
		// MaxPageSize caps whatever the client asks for.
		DefaultPageSize int `mapstructure:"default_page_size" validate:"min=1"`
		MaxPageSize     int `mapstructure:"max_page_size" validate:"min=1"`

		// CacheSize is the number of paged alert responses kept in the
		// LRU response cache. 0 disables caching.
		CacheSize int `mapstructure:"cache_size" validate:"min=0"`

		RateLimit struct {
			RequestsPerSecond int `mapstructure:"requests_per_second" validate:"min=1"`
			Burst             int `mapstructure:"burst" validate:"min=1"`
		} `mapstructure:"rate_limit"`
	} `mapstructure:"api"`

	Log struct {
		Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	} `mapstructure:"log"`
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("dataset.path", "./data/alerts.json")
	viper.SetDefault("api.port", 8000)
	viper.SetDefault("api.tls", false)
	viper.SetDefault("api.cert_file", "server.crt")
	viper.SetDefault("api.key_file", "server.key")
	viper.SetDefault("api.allowed_origins", []string{"*"})
	viper.SetDefault("api.trust_proxy", false)
	viper.SetDefault("api.default_page_size", 100)
	viper.SetDefault("api.max_page_size", 1000)
	viper.SetDefault("api.cache_size", 256)
	viper.SetDefault("api.rate_limit.requests_per_second", 100)
	viper.SetDefault("api.rate_limit.burst", 200)
	viper.SetDefault("log.level", "info")
}

// loadFromEnv sets up environment variable loading
func loadFromEnv() {
	viper.SetEnvPrefix("ARGUS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Explicit bindings for shorter env var names
	_ = viper.BindEnv("dataset.path", "ARGUS_DATASET_PATH")
	_ = viper.BindEnv("api.port", "ARGUS_API_PORT")
	_ = viper.BindEnv("log.level", "ARGUS_LOG_LEVEL")
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()
	loadFromEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, will use defaults and env vars
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration for correctness
func validateConfig(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return err
	}

	if config.API.DefaultPageSize > config.API.MaxPageSize {
		return fmt.Errorf("api.default_page_size (%d) exceeds api.max_page_size (%d)",
			config.API.DefaultPageSize, config.API.MaxPageSize)
	}

	if config.API.TLS {
		if config.API.CertFile == "" || config.API.KeyFile == "" {
			return fmt.Errorf("api.tls enabled but cert_file or key_file not set")
		}
	}

	for _, origin := range config.API.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid allowed origin: %s (must be * or an http(s) URL)", origin)
		}
	}

	return nil
}
