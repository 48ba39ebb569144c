package config

import (
	"errors"
	"strings"
	"time"
)

// APIConfig contains configuration for the remote node API.
//
// BASE_URL, EMAIL and PASSWORD are intentionally unprefixed so an existing
// operator .env file keeps working unchanged.
type APIConfig struct {
	// BaseURL is the root URL of the remote node API (e.g. "http://localhost:6688").
	BaseURL string `env:"BASE_URL"`

	// Email is the operator account email used for session login.
	Email string `env:"EMAIL"`

	// Password is the operator account password used for session login.
	Password string `env:"PASSWORD"`

	// RequestTimeout bounds each individual HTTP request.
	RequestTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	// PreflightTimeout bounds the base-URL reachability probe run before
	// workflows. The probe is advisory; failures are logged, not fatal.
	PreflightTimeout time.Duration `env:"PREFLIGHT_TIMEOUT" envDefault:"5s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	a.Email = strings.TrimSpace(a.Email)

	if a.RequestTimeout <= 0 {
		a.RequestTimeout = 10 * time.Second
	}
	if a.PreflightTimeout <= 0 {
		a.PreflightTimeout = 5 * time.Second
	}
}

// Validate checks that the fields needed to reach and authenticate against
// the remote API are set.
func (a *APIConfig) Validate() error {
	if a.BaseURL == "" {
		return errors.New("BASE_URL not found in environment variables")
	}
	if a.Email == "" || a.Password == "" {
		return errors.New("EMAIL or PASSWORD not found in environment variables")
	}
	return nil
}
