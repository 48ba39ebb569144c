package model

import "time"

// JobRun is one execution instance of a job, progressing toward a terminal
// status.
type JobRun struct {
	ID         string        `json:"id"`
	Attributes RunAttributes `json:"attributes"`
}

// RunAttributes is the subset of the remote run record that status
// classification depends on. Null entries inside the slices are meaningful
// and must be preserved, so the element type is any rather than string.
type RunAttributes struct {
	Status      string     `json:"status"`
	FatalErrors []any      `json:"fatalErrors"`
	FinishedAt  *time.Time `json:"finishedAt"`
	Outputs     []any      `json:"outputs"`
	Errors      []any      `json:"errors"`
}

// RunOutcome is the classified state of a job run.
type RunOutcome int

const (
	// OutcomePending means the run has not reached a terminal state yet.
	OutcomePending RunOutcome = iota
	// OutcomeCompleted means the run finished successfully.
	OutcomeCompleted
	// OutcomeErrored means the run failed.
	OutcomeErrored
	// OutcomeUnknown means the poller could not determine a terminal state
	// (timeout or listing failure). Indeterminate, not an error.
	OutcomeUnknown
)

// Terminal reports whether the outcome ends a poll loop successfully.
func (o RunOutcome) Terminal() bool {
	return o == OutcomeCompleted || o == OutcomeErrored
}

func (o RunOutcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeCompleted:
		return "completed"
	case OutcomeErrored:
		return "errored"
	case OutcomeUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}
