// Package mocks provides generated mock implementations for testing the job
// lifecycle services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the core ports. The generated sources are committed so tests build without
// running codegen. To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockAPI := mocks.NewMockNodeAPI(ctrl)
//	mockAPI.EXPECT().ListJobs(gomock.Any(), gomock.Any()).Return(jobs, nil)
package mocks

// Generate mock for CredentialRepository interface from internal/core.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=credential_repository_mock.go github.com/chainfleet/jobctl/internal/core CredentialRepository

// Generate mock for NodeAPI interface from internal/core.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=node_api_mock.go github.com/chainfleet/jobctl/internal/core NodeAPI

// Generate mock for TokenSource interface from internal/core.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=token_source_mock.go github.com/chainfleet/jobctl/internal/core TokenSource

// Generate mock for Poller interface from internal/core.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=poller_mock.go github.com/chainfleet/jobctl/internal/core Poller
