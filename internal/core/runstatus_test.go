package core

import (
	"testing"
	"time"

	"github.com/chainfleet/jobctl/internal/domain/model"
)

func TestClassifyRun(t *testing.T) {
	finished := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		attrs model.RunAttributes
		want  model.RunOutcome
	}{
		{
			name:  "explicit completed status",
			attrs: model.RunAttributes{Status: "completed"},
			want:  model.OutcomeCompleted,
		},
		{
			name:  "explicit errored status",
			attrs: model.RunAttributes{Status: "errored"},
			want:  model.OutcomeErrored,
		},
		{
			name:  "status is case-insensitive",
			attrs: model.RunAttributes{Status: "Completed"},
			want:  model.OutcomeCompleted,
		},
		{
			name:  "unrecognized status keeps polling",
			attrs: model.RunAttributes{Status: "running"},
			want:  model.OutcomePending,
		},
		{
			name: "fatal errors beat explicit completed status",
			attrs: model.RunAttributes{
				Status:      "completed",
				FatalErrors: []any{nil, "task timeout"},
			},
			want: model.OutcomeErrored,
		},
		{
			name: "all-null fatal errors are ignored",
			attrs: model.RunAttributes{
				Status:      "completed",
				FatalErrors: []any{nil, nil},
			},
			want: model.OutcomeCompleted,
		},
		{
			name: "finished with outputs and no errors",
			attrs: model.RunAttributes{
				FinishedAt: &finished,
				Outputs:    []any{float64(1), float64(2)},
				Errors:     []any{},
			},
			want: model.OutcomeCompleted,
		},
		{
			name: "finished with outputs and only null errors",
			attrs: model.RunAttributes{
				FinishedAt: &finished,
				Outputs:    []any{"0x1234"},
				Errors:     []any{nil, nil},
			},
			want: model.OutcomeCompleted,
		},
		{
			name: "finished with a null output entry",
			attrs: model.RunAttributes{
				FinishedAt: &finished,
				Outputs:    []any{float64(1), nil},
				Errors:     []any{},
			},
			want: model.OutcomeErrored,
		},
		{
			name: "finished with empty outputs",
			attrs: model.RunAttributes{
				FinishedAt: &finished,
				Outputs:    []any{},
			},
			want: model.OutcomeErrored,
		},
		{
			name: "finished with a real error entry",
			attrs: model.RunAttributes{
				FinishedAt: &finished,
				Outputs:    []any{"ok"},
				Errors:     []any{"revert"},
			},
			want: model.OutcomeErrored,
		},
		{
			name:  "no status and not finished",
			attrs: model.RunAttributes{},
			want:  model.OutcomePending,
		},
		{
			name: "fatal errors with nothing else",
			attrs: model.RunAttributes{
				FatalErrors: []any{"connection refused"},
			},
			want: model.OutcomeErrored,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyRun(tt.attrs); got != tt.want {
				t.Fatalf("ClassifyRun() = %v, want %v", got, tt.want)
			}
		})
	}
}
