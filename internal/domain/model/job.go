// Package model contains the domain types for the node job lifecycle:
// the cached session credential, jobs, runs and run outcomes.
package model

// Job is a unit of configured work on the remote node, identified by an
// opaque id and created from a TOML specification document.
type Job struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`

	// Attributes carries the server-side job description verbatim. The CLI
	// never interprets it beyond display and --query projection.
	Attributes map[string]any `json:"attributes,omitempty"`
}
