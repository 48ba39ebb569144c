package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: remote node API configuration
//   - credentials.go: credential cache configuration
//   - poll.go: run polling configuration
type AppConfig struct {
	// IsDev controls development mode behavior (debug-level logging).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// API is the remote node API configuration.
	API APIConfig

	// Credentials is the credential cache configuration.
	Credentials CredentialsConfig `envPrefix:"CRED_"`

	// Poll is the run polling configuration.
	Poll PollConfig `envPrefix:"POLL_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Credentials.Sanitize()
	c.Poll.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}

// Validate checks that configuration required for talking to the remote
// node API is present. Commands that never touch the network may skip it.
func (c *AppConfig) Validate() error {
	return c.API.Validate()
}
