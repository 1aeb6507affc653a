package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDevConfig() *Config {
	return &Config{
		Port:                         "5000",
		DBHost:                       "localhost",
		DBPort:                       "5432",
		DBUser:                       "user",
		DBPassword:                   "password",
		DBName:                       "dev404",
		DBSSLMode:                    "disable",
		Env:                          "development",
		RateLimitWindowMinutes:       15,
		RateLimitMax:                 100,
		StrictRateLimitWindowMinutes: 60,
		StrictRateLimitMax:           5,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:    "Development Defaults Valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "Missing Port",
			mutate:  func(c *Config) { c.Port = "" },
			wantErr: true,
		},
		{
			name:    "Zero Rate Limit Max",
			mutate:  func(c *Config) { c.RateLimitMax = 0 },
			wantErr: true,
		},
		{
			name:    "Negative Strict Window",
			mutate:  func(c *Config) { c.StrictRateLimitWindowMinutes = -1 },
			wantErr: true,
		},
		{
			name: "Production Weak Password",
			mutate: func(c *Config) {
				c.Env = "production"
				c.DBSSLMode = "require"
			},
			wantErr: true,
		},
		{
			name: "Production SSL Disabled",
			mutate: func(c *Config) {
				c.Env = "production"
				c.DBPassword = "s3cure-enough"
			},
			wantErr: true,
		},
		{
			name: "Production Hardened",
			mutate: func(c *Config) {
				c.Env = "production"
				c.DBPassword = "s3cure-enough"
				c.DBSSLMode = "require"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validDevConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	for env, want := range map[string]bool{
		"production":  true,
		"prod":        true,
		"development": false,
		"test":        false,
		"":            false,
	} {
		assert.Equal(t, want, (&Config{Env: env}).IsProduction(), "env %q", env)
	}
}
