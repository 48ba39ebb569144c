package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chainfleet/jobctl/internal/domain/model"
)

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	API    NodeAPI
	Tokens TokenSource
	Poller Poller
	Logger *slog.Logger
}

// JobService exposes the job lifecycle operations. Every operation resolves
// a session credential through the token source first, so an expired cache
// triggers at most one login per process invocation.
type JobService struct {
	api    NodeAPI
	tokens TokenSource
	poller Poller
	logger *slog.Logger
}

// NewJobService constructs a new service. API and Tokens are required;
// Poller is only needed for Run and Cycle.
func NewJobService(opts JobServiceOptions) *JobService {
	if opts.API == nil {
		panic("job service requires a node API client")
	}
	if opts.Tokens == nil {
		panic("job service requires a token source")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &JobService{api: opts.API, tokens: opts.Tokens, poller: opts.Poller, logger: logger}
}

// List returns all jobs known to the node.
func (s *JobService) List(ctx context.Context) ([]model.Job, error) {
	cred, err := s.tokens.GetValidToken(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := s.api.ListJobs(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// Create submits a TOML job specification and returns the new job id.
func (s *JobService) Create(ctx context.Context, tomlSpec string) (string, error) {
	cred, err := s.tokens.GetValidToken(ctx)
	if err != nil {
		return "", err
	}
	jobID, err := s.api.CreateJob(ctx, cred, tomlSpec)
	if err != nil {
		return "", fmt.Errorf("create job: %w", err)
	}
	s.logger.Info("job created", "job_id", jobID)
	return jobID, nil
}

// Delete removes a job by id. Deleting a job the node does not know succeeds.
func (s *JobService) Delete(ctx context.Context, jobID string) error {
	cred, err := s.tokens.GetValidToken(ctx)
	if err != nil {
		return err
	}
	if err := s.api.DeleteJob(ctx, cred, jobID); err != nil {
		return fmt.Errorf("delete job %s: %w", jobID, err)
	}
	s.logger.Info("job deleted", "job_id", jobID)
	return nil
}

// DeleteAllResult summarizes a delete-all sweep.
type DeleteAllResult struct {
	Deleted []string
	Failed  []string
}

// DeleteAll lists every job on the node and deletes each one sequentially.
// Individual failures are recorded and the sweep continues.
func (s *JobService) DeleteAll(ctx context.Context) (DeleteAllResult, error) {
	cred, err := s.tokens.GetValidToken(ctx)
	if err != nil {
		return DeleteAllResult{}, err
	}
	jobs, err := s.api.ListJobs(ctx, cred)
	if err != nil {
		return DeleteAllResult{}, fmt.Errorf("list jobs: %w", err)
	}

	var result DeleteAllResult
	for _, job := range jobs {
		if delErr := s.api.DeleteJob(ctx, cred, job.ID); delErr != nil {
			s.logger.Error("delete job failed", "job_id", job.ID, "error", delErr)
			result.Failed = append(result.Failed, job.ID)
			continue
		}
		s.logger.Info("job deleted", "job_id", job.ID)
		result.Deleted = append(result.Deleted, job.ID)
	}
	return result, nil
}

// RunResult is the result of triggering a job run and polling it.
type RunResult struct {
	RunID   string
	Outcome model.RunOutcome
}

// Run triggers one execution of the job and polls until it terminates or the
// timeout elapses.
func (s *JobService) Run(ctx context.Context, jobID string, timeout time.Duration) (RunResult, error) {
	if s.poller == nil {
		panic("job service run requires a poller")
	}
	cred, err := s.tokens.GetValidToken(ctx)
	if err != nil {
		return RunResult{}, err
	}

	runID, err := s.api.TriggerRun(ctx, cred, jobID)
	if err != nil {
		return RunResult{}, fmt.Errorf("run job %s: %w", jobID, err)
	}
	s.logger.Info("job run triggered", "job_id", jobID, "run_id", runID)

	outcome, err := s.poller.Poll(ctx, cred, jobID, runID, timeout)
	if err != nil {
		return RunResult{RunID: runID, Outcome: model.OutcomeUnknown}, err
	}
	return RunResult{RunID: runID, Outcome: outcome}, nil
}

// CycleResult is the result of a create -> run -> delete workflow.
type CycleResult struct {
	JobID   string
	RunID   string
	Outcome model.RunOutcome
}

// Cycle creates a job from the TOML specification, runs it to a terminal
// state and deletes it again. The delete happens whether or not the run
// succeeded; a delete failure is logged but never masks the run outcome.
func (s *JobService) Cycle(ctx context.Context, tomlSpec string, timeout time.Duration) (CycleResult, error) {
	jobID, err := s.Create(ctx, tomlSpec)
	if err != nil {
		return CycleResult{}, err
	}

	defer func() {
		if delErr := s.Delete(ctx, jobID); delErr != nil {
			s.logger.Error("cleanup delete failed", "job_id", jobID, "error", delErr)
		}
	}()

	runResult, err := s.Run(ctx, jobID, timeout)
	if err != nil {
		return CycleResult{JobID: jobID, RunID: runResult.RunID, Outcome: model.OutcomeUnknown}, err
	}

	return CycleResult{JobID: jobID, RunID: runResult.RunID, Outcome: runResult.Outcome}, nil
}
