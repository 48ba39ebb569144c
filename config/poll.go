package config

import "time"

// PollConfig contains configuration for the job run poller.
type PollConfig struct {
	// Interval is the fixed sleep between run listing queries.
	// The poller applies no backoff; the interval holds regardless of
	// elapsed time.
	Interval time.Duration `env:"INTERVAL" envDefault:"2s"`

	// Timeout is the wall-clock budget for a single poll loop. Exceeding it
	// yields an indeterminate (not errored) result.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
}

// Sanitize applies guardrails to poll configuration values.
func (p *PollConfig) Sanitize() {
	// Clamp the interval to something that will not hammer the API.
	if p.Interval < 100*time.Millisecond {
		p.Interval = 2 * time.Second
	}
	if p.Timeout <= 0 {
		p.Timeout = 60 * time.Second
	}
}
