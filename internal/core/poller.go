package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/chainfleet/jobctl/internal/domain/model"
)

// RunPollerOptions groups dependencies for RunPoller.
type RunPollerOptions struct {
	API    NodeAPI
	Logger *slog.Logger

	// Interval is the fixed sleep between listing queries. Defaults to 2s.
	// No backoff is applied regardless of elapsed time.
	Interval time.Duration

	// Now and Sleep exist so tests can drive the loop without real waits.
	Now   func() time.Time
	Sleep func(ctx context.Context, d time.Duration) error
}

// RunPoller watches one job run until it reaches a terminal state or the
// wall-clock budget is spent. Single-threaded: the sleep between listing
// queries is the only suspension point.
type RunPoller struct {
	api      NodeAPI
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewRunPoller constructs a poller. API is required.
func NewRunPoller(opts RunPollerOptions) *RunPoller {
	if opts.API == nil {
		panic("run poller requires a node API client")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepWithContext
	}
	return &RunPoller{api: opts.API, logger: logger, interval: interval, now: now, sleep: sleep}
}

// Poll queries the run listing for the job until the run identified by runID
// classifies as terminal, the listing query fails, or timeout elapses.
//
// Semantics:
//   - a run absent from the listing is still pending; keep polling
//   - a failed listing query aborts immediately with OutcomeUnknown, no retry
//   - exceeding timeout yields OutcomeUnknown: indeterminate, not an error
func (p *RunPoller) Poll(
	ctx context.Context,
	cred model.Credential,
	jobID, runID string,
	timeout time.Duration,
) (model.RunOutcome, error) {
	start := p.now()

	for {
		runs, err := p.api.ListRuns(ctx, cred, jobID)
		if err != nil {
			// Converted to a negative result at this call site; not re-raised.
			p.logger.Error("run listing query failed", "job_id", jobID, "error", err)
			return model.OutcomeUnknown, nil
		}

		run, found := findRun(runs, runID)
		if found {
			outcome := ClassifyRun(run.Attributes)
			if outcome.Terminal() {
				p.logger.Info("job run reached terminal state",
					"job_id", jobID, "run_id", runID, "outcome", outcome.String())
				return outcome, nil
			}
			p.logger.Debug("job run still pending",
				"job_id", jobID, "run_id", runID, "status", run.Attributes.Status)
		} else {
			// Tolerated eventual-consistency window on the server: the run we
			// just triggered may not show up in the listing yet.
			p.logger.Debug("job run not found in listing", "job_id", jobID, "run_id", runID)
		}

		if p.now().Sub(start) > timeout {
			p.logger.Warn("timeout waiting for job run to finish",
				"job_id", jobID, "run_id", runID, "timeout", timeout)
			return model.OutcomeUnknown, nil
		}

		if err := p.sleep(ctx, p.interval); err != nil {
			return model.OutcomeUnknown, err
		}
	}
}

func findRun(runs []model.JobRun, runID string) (model.JobRun, bool) {
	for _, r := range runs {
		if r.ID == runID {
			return r, true
		}
	}
	return model.JobRun{}, false
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
