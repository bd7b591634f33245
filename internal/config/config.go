package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Database connection modes.
const (
	DBModePool   = "pool"
	DBModeSingle = "single"
)

// Credential hashing strategies.
const (
	HashBcrypt    = "bcrypt"
	HashPlaintext = "plaintext"
)

// DefaultJWTSecret is the signing key used when auth.jwt_secret is not set.
// It is not secret; deployments must configure their own key.
const DefaultJWTSecret = "insecure-development-secret"

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		Host         string `yaml:"host"`
		Port         int    `yaml:"port"`
		User         string `yaml:"user"`
		Password     string `yaml:"password"`
		Name         string `yaml:"name"`
		SSLMode      string `yaml:"sslmode"`
		Mode         string `yaml:"mode"`
		MaxOpenConns int    `yaml:"max_open_conns"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret       string `yaml:"jwt_secret"`
		HashingStrategy string `yaml:"hashing_strategy"`
	} `yaml:"auth"`
}

// LoadConfig reads configuration from the specified YAML file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "require"
	}
	if c.Database.Mode == "" {
		c.Database.Mode = DBModePool
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Auth.HashingStrategy == "" {
		c.Auth.HashingStrategy = HashBcrypt
	}
}
