package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Port    int    `yaml:"port"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`

	Auth AuthConfig `yaml:"auth"`

	LogLevel string `yaml:"log_level"`
}

// Duration wraps time.Duration so YAML values like "12h" parse.
type Duration time.Duration

// UnmarshalYAML decodes a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// AuthConfig holds the credential and session settings. The demo admin
// account is injected here rather than hard-coded in the auth package.
type AuthConfig struct {
	JWTSecret string   `yaml:"jwt_secret"`
	TokenTTL  Duration `yaml:"token_ttl"`

	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		Role     string `yaml:"role"`
	} `yaml:"admin"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Metrics.Enabled = true
	cfg.Metrics.Port = 9090
	cfg.Metrics.Path = "/metrics"
	cfg.Auth.JWTSecret = "merrymeal-dev-secret"
	cfg.Auth.TokenTTL = Duration(12 * time.Hour)
	cfg.Auth.Admin.Email = "test@example.com"
	cfg.Auth.Admin.Password = "password123"
	cfg.Auth.Admin.Name = "John Doe"
	cfg.Auth.Admin.Role = "admin"
	cfg.LogLevel = "info"
	return cfg
}

// Load reads the configuration file at path, applying defaults for any
// unset field.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
