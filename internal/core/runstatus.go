package core

import (
	"strings"

	"github.com/chainfleet/jobctl/internal/domain/model"
)

// ClassifyRun derives the outcome of a run from its remote attributes.
//
// The precedence order reflects observed API behavior and must not be
// rearranged:
//
//  1. any non-null fatalErrors entry marks the run errored, regardless of
//     every other field;
//  2. an explicit status string wins next: "completed" and "errored" are
//     terminal, any other value means the run is still in flight;
//  3. with an empty status but a finish timestamp, outputs and errors decide:
//     completed iff outputs is non-empty with no null entry and errors is
//     empty or all-null;
//  4. otherwise the run is still pending.
func ClassifyRun(attrs model.RunAttributes) model.RunOutcome {
	if anyNonNull(attrs.FatalErrors) {
		return model.OutcomeErrored
	}

	if attrs.Status != "" {
		switch strings.ToLower(attrs.Status) {
		case "completed":
			return model.OutcomeCompleted
		case "errored":
			return model.OutcomeErrored
		default:
			return model.OutcomePending
		}
	}

	if attrs.FinishedAt != nil {
		if len(attrs.Outputs) > 0 && allNonNull(attrs.Outputs) && allNull(attrs.Errors) {
			return model.OutcomeCompleted
		}
		return model.OutcomeErrored
	}

	return model.OutcomePending
}

func anyNonNull(entries []any) bool {
	for _, e := range entries {
		if e != nil {
			return true
		}
	}
	return false
}

func allNonNull(entries []any) bool {
	for _, e := range entries {
		if e == nil {
			return false
		}
	}
	return true
}

// allNull holds for an empty slice as well: "no errors" and "only null
// errors" are equivalent.
func allNull(entries []any) bool {
	for _, e := range entries {
		if e != nil {
			return false
		}
	}
	return true
}
