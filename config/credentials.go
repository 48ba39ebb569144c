package config

import (
	"fmt"
	"strings"
)

// CredentialBackend selects where the cached session credential is persisted.
type CredentialBackend string

const (
	// CredentialBackendFile persists the credential record to a flat JSON file.
	CredentialBackendFile CredentialBackend = "file"
	// CredentialBackendRedis persists the credential record to a Redis key.
	CredentialBackendRedis CredentialBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for CredentialBackend.
func (b *CredentialBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "file", "redis":
		*b = CredentialBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid CredentialBackend: %q (valid options: file, redis)", v)
	}
}

// CredentialRedisConfig contains Redis connection settings for the
// Redis-backed credential store.
type CredentialRedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`

	// Key is the Redis key the single credential record is stored under.
	Key string `env:"KEY" envDefault:"jobctl:session"`
}

// CredentialsConfig contains configuration for the credential cache.
// The cache holds exactly one record; every successful login overwrites it.
type CredentialsConfig struct {
	// Backend determines which credential store implementation to use.
	Backend CredentialBackend `env:"BACKEND" envDefault:"file"`

	// FilePath is the credential file location (used when Backend=file).
	// The file layout matches the legacy token file: cookie_name, token,
	// expires (ISO-8601).
	FilePath string `env:"FILE" envDefault:"session_token.json"`

	// Redis connection settings (used when Backend=redis).
	Redis CredentialRedisConfig `envPrefix:"REDIS_"`
}

// Sanitize applies guardrails to credential cache configuration values.
func (c *CredentialsConfig) Sanitize() {
	c.FilePath = strings.TrimSpace(c.FilePath)
	if c.FilePath == "" {
		c.FilePath = "session_token.json"
	}
	if strings.TrimSpace(c.Redis.Key) == "" {
		c.Redis.Key = "jobctl:session"
	}
}
