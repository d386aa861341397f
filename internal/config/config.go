// Package config loads the server configuration from the process
// environment. A .env file in the working directory is honored when
// present, which is convenient for local development.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// defaultDomain is used when BACKLOG_DOMAIN is not set. Spaces on
// backlog.com or enterprise domains set the variable explicitly.
const defaultDomain = "backlog.jp"

// Config holds the two required Backlog values plus the optional
// domain override.
type Config struct {
	// APIKey authenticates every outbound call (query credential).
	APIKey string
	// SpaceID is the Backlog space subdomain.
	SpaceID string
	// Domain is the Backlog service domain (backlog.jp, backlog.com, ...).
	Domain string
}

// Load reads the configuration from the environment. Missing values
// are NOT an error here — an empty key or space simply fails
// authentication on the first backend call, which keeps startup
// dependency-free.
func Load() *Config {
	// Best effort: a missing .env file is the normal case in
	// production (host passes real environment variables).
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:  os.Getenv("BACKLOG_API_KEY"),
		SpaceID: os.Getenv("BACKLOG_SPACE_ID"),
		Domain:  os.Getenv("BACKLOG_DOMAIN"),
	}
	if cfg.Domain == "" {
		cfg.Domain = defaultDomain
	}
	return cfg
}

// BaseURL returns the space root, e.g. "https://example.backlog.jp".
func (c *Config) BaseURL() string {
	return fmt.Sprintf("https://%s.%s", c.SpaceID, c.Domain)
}
