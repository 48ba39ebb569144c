// Package core provides the business logic for the node job lifecycle:
// session management, run status classification, the run poller and the job
// operations that compose them.
package core

import (
	"context"
	"time"

	"github.com/chainfleet/jobctl/internal/domain/model"
)

// This file contains the port definitions (hexagonal architecture). Services
// depend on these interfaces, not on concrete adapters.

// CredentialRepository persists the single cached session credential.
// Save performs a full overwrite; the cache never holds more than one record.
// Load returns ErrNoCredential when nothing is persisted.
type CredentialRepository interface {
	Load(ctx context.Context) (model.Credential, error)
	Save(ctx context.Context, cred model.Credential) error
}

// NodeAPI is the outbound port to the remote job-orchestration HTTP API.
// All calls except Login and Ping authenticate with the session credential.
type NodeAPI interface {
	// Login submits the configured email/password to the session endpoint and
	// returns the credential derived from the first response cookie.
	// Failures are *AuthError.
	Login(ctx context.Context) (model.Credential, error)

	// ListJobs returns all jobs known to the node.
	ListJobs(ctx context.Context, cred model.Credential) ([]model.Job, error)

	// CreateJob submits a TOML job specification and returns the new job id.
	CreateJob(ctx context.Context, cred model.Credential, tomlSpec string) (string, error)

	// DeleteJob deletes a job by id. Deleting an id the node does not know is
	// success: the operation is idempotent from the caller's perspective.
	DeleteJob(ctx context.Context, cred model.Credential, jobID string) error

	// TriggerRun starts one execution of the job and returns the run id.
	TriggerRun(ctx context.Context, cred model.Credential, jobID string) (string, error)

	// ListRuns returns the run records for a job.
	ListRuns(ctx context.Context, cred model.Credential, jobID string) ([]model.JobRun, error)

	// Ping probes the base URL for reachability. Advisory only.
	Ping(ctx context.Context) error
}

// TokenSource yields a usable session credential, logging in when needed.
// Implemented by SessionService.
type TokenSource interface {
	GetValidToken(ctx context.Context) (model.Credential, error)
}

// Poller watches one job run until terminal state or timeout.
// Implemented by RunPoller.
type Poller interface {
	Poll(
		ctx context.Context,
		cred model.Credential,
		jobID, runID string,
		timeout time.Duration,
	) (model.RunOutcome, error)
}
