// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port           string `mapstructure:"PORT"`
	DBHost         string `mapstructure:"DB_HOST"`
	DBPort         string `mapstructure:"DB_PORT"`
	DBUser         string `mapstructure:"DB_USER"`
	DBPassword     string `mapstructure:"DB_PASSWORD"`
	DBName         string `mapstructure:"DB_NAME"`
	DBSSLMode      string `mapstructure:"DB_SSLMODE"`
	RedisURL       string `mapstructure:"REDIS_URL"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	Env            string `mapstructure:"APP_ENV"`

	// Blanket rate limit applied to all API traffic.
	RateLimitWindowMinutes int `mapstructure:"RATE_LIMIT_WINDOW_MINUTES"`
	RateLimitMax           int `mapstructure:"RATE_LIMIT_MAX"`

	// Stricter policy for the contact and signup form endpoints.
	StrictRateLimitWindowMinutes int `mapstructure:"STRICT_RATE_LIMIT_WINDOW_MINUTES"`
	StrictRateLimitMax           int `mapstructure:"STRICT_RATE_LIMIT_MAX"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; environment variables and defaults
	// are enough to run.
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env != "development" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err == nil {
			log.Printf("Loaded profile-specific configuration: config.%s.yml", env)
		}
	}

	// Set default values for development
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "user")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("DB_NAME", "dev404")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:5174")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("RATE_LIMIT_WINDOW_MINUTES", 15)
	viper.SetDefault("RATE_LIMIT_MAX", 100)
	viper.SetDefault("STRICT_RATE_LIMIT_WINDOW_MINUTES", 60)
	viper.SetDefault("STRICT_RATE_LIMIT_MAX", 5)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// IsProduction reports whether the service runs with production hardening
// (trusted reverse proxy headers, rate limiting enabled).
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// Validate ensures that required configuration values are present and meet security standards.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.RateLimitMax <= 0 || c.RateLimitWindowMinutes <= 0 {
		return errors.New("RATE_LIMIT_MAX and RATE_LIMIT_WINDOW_MINUTES must be positive")
	}
	if c.StrictRateLimitMax <= 0 || c.StrictRateLimitWindowMinutes <= 0 {
		return errors.New("STRICT_RATE_LIMIT_MAX and STRICT_RATE_LIMIT_WINDOW_MINUTES must be positive")
	}

	// Strict checks for production
	if c.IsProduction() {
		if c.DBPassword == "password" || c.DBPassword == "" {
			return errors.New("a strong DB_PASSWORD is required in production")
		}
		if c.DBSSLMode == "disable" || c.DBSSLMode == "" {
			return errors.New("DB_SSLMODE must not be 'disable' in production")
		}
		if c.AllowedOrigins == "*" {
			log.Println("WARNING: ALLOWED_ORIGINS is set to '*' in production. This is insecure.")
		}
	}

	return nil
}
