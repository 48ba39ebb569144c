package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfleet/jobctl/internal/domain/model"
)

func TestParseRunCmdFlags(t *testing.T) {
	opts, err := parseRunCmdFlags([]string{"--job", "42"}, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "42", opts.JobID)
	assert.Equal(t, time.Minute, opts.Timeout)

	opts, err = parseRunCmdFlags([]string{"--job", "42", "--timeout", "10s"}, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, opts.Timeout)

	_, err = parseRunCmdFlags([]string{}, time.Minute)
	require.Error(t, err)

	_, err = parseRunCmdFlags([]string{"--job", "42", "--timeout", "-1s"}, time.Minute)
	require.Error(t, err)
}

func TestParseListCmdFlagsValidatesQuery(t *testing.T) {
	opts, err := parseListCmdFlags([]string{"--query", "[].id"})
	require.NoError(t, err)
	assert.Equal(t, "[].id", opts.Query)

	_, err = parseListCmdFlags([]string{"--query", "[?broken"})
	require.Error(t, err)
}

func TestParseCreateCmdFlagsRequiresSpec(t *testing.T) {
	_, err := parseCreateCmdFlags([]string{})
	require.Error(t, err)

	opts, err := parseCreateCmdFlags([]string{"--spec", "job.toml"})
	require.NoError(t, err)
	assert.Equal(t, "job.toml", opts.SpecPath)
}

func TestConfirmActionBypass(t *testing.T) {
	require.NoError(t, confirmAction(confirmOptions{yes: true}, "delete all jobs"))
	require.NoError(t, confirmAction(confirmOptions{dryRun: true}, "delete all jobs"))
}

func TestReadJobSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.toml")
	require.NoError(t, os.WriteFile(path, []byte("type = \"webhook\"\n"), 0o600))

	spec, err := readJobSpec(path)
	require.NoError(t, err)
	assert.Equal(t, "type = \"webhook\"\n", spec)

	_, err = readJobSpec(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestProjectJobs(t *testing.T) {
	jobs := []model.Job{
		{ID: "1", Type: "directrequest", Attributes: map[string]any{"name": "fetch-price"}},
		{ID: "2", Type: "webhook", Attributes: map[string]any{"name": "submit-answer"}},
	}

	full, err := projectJobs(jobs, "")
	require.NoError(t, err)
	entries, ok := full.([]any)
	require.True(t, ok)
	assert.Len(t, entries, 2)

	projected, err := projectJobs(jobs, "[].id")
	require.NoError(t, err)
	ids, ok := projected.([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"1", "2"}, ids)
}
