package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultEndpoint = "http://127.0.0.1:5000/execute_query"
	DefaultPort     = "8080"
)

type Config struct {
	// Endpoint is the backend URL queries are POSTed to.
	Endpoint string
	Port     string
}

// Load reads envFile, if it exists, then the process environment.
// Variables already set in the environment win over the file, and non-empty
// fields of overrides win over both. The result is validated once.
func Load(envFile string, overrides Config) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Endpoint: getEnv("QUERYDESK_ENDPOINT", DefaultEndpoint),
		Port:     getEnv("QUERYDESK_PORT", DefaultPort),
	}
	if overrides.Endpoint != "" {
		cfg.Endpoint = overrides.Endpoint
	}
	if overrides.Port != "" {
		cfg.Port = overrides.Port
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: want an absolute http(s) URL", c.Endpoint)
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
