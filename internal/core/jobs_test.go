package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/chainfleet/jobctl/internal/core"
	"github.com/chainfleet/jobctl/internal/domain/model"
	"github.com/chainfleet/jobctl/internal/mocks"
)

type jobServiceFixture struct {
	api    *mocks.MockNodeAPI
	tokens *mocks.MockTokenSource
	poller *mocks.MockPoller
	svc    *core.JobService
	cred   model.Credential
}

func newJobServiceFixture(t *testing.T) *jobServiceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &jobServiceFixture{
		api:    mocks.NewMockNodeAPI(ctrl),
		tokens: mocks.NewMockTokenSource(ctrl),
		poller: mocks.NewMockPoller(ctrl),
		cred: model.Credential{
			CookieName: "clsession",
			Token:      "tok",
			ExpiresAt:  time.Now().Add(time.Hour),
		},
	}
	f.svc = core.NewJobService(core.JobServiceOptions{
		API:    f.api,
		Tokens: f.tokens,
		Poller: f.poller,
	})
	return f
}

func TestNewJobService_RequiredDependencies(t *testing.T) {
	assert.Panics(t, func() {
		core.NewJobService(core.JobServiceOptions{})
	})
}

func TestJobService_List(t *testing.T) {
	f := newJobServiceFixture(t)
	ctx := context.Background()
	jobs := []model.Job{{ID: "1"}, {ID: "2"}}

	f.tokens.EXPECT().GetValidToken(ctx).Return(f.cred, nil)
	f.api.EXPECT().ListJobs(ctx, f.cred).Return(jobs, nil)

	got, err := f.svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, jobs, got)
}

func TestJobService_List_AuthFailurePropagates(t *testing.T) {
	f := newJobServiceFixture(t)
	ctx := context.Background()
	authErr := &core.AuthError{Status: 401, Detail: "bad credentials"}

	f.tokens.EXPECT().GetValidToken(ctx).Return(model.Credential{}, authErr)

	_, err := f.svc.List(ctx)

	var gotAuth *core.AuthError
	require.ErrorAs(t, err, &gotAuth)
}

func TestJobService_Create(t *testing.T) {
	f := newJobServiceFixture(t)
	ctx := context.Background()
	spec := "type = \"directrequest\"\n"

	f.tokens.EXPECT().GetValidToken(ctx).Return(f.cred, nil)
	f.api.EXPECT().CreateJob(ctx, f.cred, spec).Return("job-9", nil)

	jobID, err := f.svc.Create(ctx, spec)

	require.NoError(t, err)
	assert.Equal(t, "job-9", jobID)
}

func TestJobService_Delete_NonexistentJobSucceeds(t *testing.T) {
	f := newJobServiceFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().GetValidToken(ctx).Return(f.cred, nil)
	// The adapter maps 404 to success, so the service sees nil.
	f.api.EXPECT().DeleteJob(ctx, f.cred, "ghost").Return(nil)

	require.NoError(t, f.svc.Delete(ctx, "ghost"))
}

func TestJobService_DeleteAll_ContinuesPastFailures(t *testing.T) {
	f := newJobServiceFixture(t)
	ctx := context.Background()
	jobs := []model.Job{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	f.tokens.EXPECT().GetValidToken(ctx).Return(f.cred, nil)
	f.api.EXPECT().ListJobs(ctx, f.cred).Return(jobs, nil)
	gomock.InOrder(
		f.api.EXPECT().DeleteJob(ctx, f.cred, "1").Return(nil),
		f.api.EXPECT().DeleteJob(ctx, f.cred, "2").
			Return(&core.NetworkError{Op: "delete job", Status: 500, Detail: "boom"}),
		f.api.EXPECT().DeleteJob(ctx, f.cred, "3").Return(nil),
	)

	result, err := f.svc.DeleteAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, result.Deleted)
	assert.Equal(t, []string{"2"}, result.Failed)
}

func TestJobService_Run(t *testing.T) {
	f := newJobServiceFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().GetValidToken(ctx).Return(f.cred, nil)
	f.api.EXPECT().TriggerRun(ctx, f.cred, "42").Return("run-7", nil)
	f.poller.EXPECT().Poll(ctx, f.cred, "42", "run-7", time.Minute).
		Return(model.OutcomeCompleted, nil)

	result, err := f.svc.Run(ctx, "42", time.Minute)

	require.NoError(t, err)
	assert.Equal(t, "run-7", result.RunID)
	assert.Equal(t, model.OutcomeCompleted, result.Outcome)
}

func TestJobService_Run_TriggerFailure(t *testing.T) {
	f := newJobServiceFixture(t)
	ctx := context.Background()
	trigErr := &core.NetworkError{Op: "run job", Status: 422, Detail: "unprocessable"}

	f.tokens.EXPECT().GetValidToken(ctx).Return(f.cred, nil)
	f.api.EXPECT().TriggerRun(ctx, f.cred, "42").Return("", trigErr)
	f.poller.EXPECT().Poll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.Run(ctx, "42", time.Minute)

	require.Error(t, err)
	assert.ErrorIs(t, err, trigErr)
}

func TestJobService_Cycle_DeletesAfterCompletedRun(t *testing.T) {
	f := newJobServiceFixture(t)
	ctx := context.Background()
	spec := "type = \"webhook\"\n"

	// Create, run and the cleanup delete each resolve a token.
	f.tokens.EXPECT().GetValidToken(ctx).Return(f.cred, nil).Times(3)
	f.api.EXPECT().CreateJob(ctx, f.cred, spec).Return("job-9", nil)
	f.api.EXPECT().TriggerRun(ctx, f.cred, "job-9").Return("run-1", nil)
	f.poller.EXPECT().Poll(ctx, f.cred, "job-9", "run-1", time.Minute).
		Return(model.OutcomeCompleted, nil)
	f.api.EXPECT().DeleteJob(ctx, f.cred, "job-9").Return(nil)

	result, err := f.svc.Cycle(ctx, spec, time.Minute)

	require.NoError(t, err)
	assert.Equal(t, "job-9", result.JobID)
	assert.Equal(t, model.OutcomeCompleted, result.Outcome)
}

func TestJobService_Cycle_DeletesEvenWhenRunErrors(t *testing.T) {
	f := newJobServiceFixture(t)
	ctx := context.Background()
	spec := "type = \"webhook\"\n"

	f.tokens.EXPECT().GetValidToken(ctx).Return(f.cred, nil).Times(3)
	f.api.EXPECT().CreateJob(ctx, f.cred, spec).Return("job-9", nil)
	f.api.EXPECT().TriggerRun(ctx, f.cred, "job-9").Return("run-1", nil)
	f.poller.EXPECT().Poll(ctx, f.cred, "job-9", "run-1", time.Minute).
		Return(model.OutcomeErrored, nil)
	// The job is deleted regardless of the run outcome.
	f.api.EXPECT().DeleteJob(ctx, f.cred, "job-9").Return(nil)

	result, err := f.svc.Cycle(ctx, spec, time.Minute)

	require.NoError(t, err)
	assert.Equal(t, model.OutcomeErrored, result.Outcome)
}

func TestJobService_Cycle_CreateFailureSkipsCleanup(t *testing.T) {
	f := newJobServiceFixture(t)
	ctx := context.Background()
	spec := "broken"
	createErr := &core.NetworkError{Op: "create job", Status: 400, Detail: "invalid toml"}

	f.tokens.EXPECT().GetValidToken(ctx).Return(f.cred, nil)
	f.api.EXPECT().CreateJob(ctx, f.cred, spec).Return("", createErr)
	f.api.EXPECT().DeleteJob(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.Cycle(ctx, spec, time.Minute)

	require.Error(t, err)
	assert.ErrorIs(t, err, createErr)
}
