package bootstrap

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfleet/jobctl/config"
)

func testConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	cfg := &config.AppConfig{}
	cfg.API.BaseURL = "http://localhost:6688"
	cfg.API.Email = "ops@example.com"
	cfg.API.Password = "hunter2"
	cfg.API.RequestTimeout = 5 * time.Second
	cfg.Credentials.Backend = config.CredentialBackendFile
	cfg.Credentials.FilePath = filepath.Join(t.TempDir(), "session_token.json")
	cfg.Poll.Interval = time.Second
	return cfg
}

func TestNewServices_FileBackend(t *testing.T) {
	container, err := NewServices(&ServiceDeps{Config: testConfig(t)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	assert.NotNil(t, container.API)
	assert.NotNil(t, container.Sessions)
	assert.NotNil(t, container.Poller)
	assert.NotNil(t, container.Jobs)
	assert.Nil(t, container.redisClient)
}

func TestNewServices_RedisBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.Credentials.Backend = config.CredentialBackendRedis
	cfg.Credentials.Redis.Addr = "localhost:6379"
	cfg.Credentials.Redis.Key = "jobctl:test:bootstrap"

	container, err := NewServices(&ServiceDeps{Config: cfg})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	assert.NotNil(t, container.redisClient)
	assert.NotNil(t, container.Jobs)
}

func TestNewServices_RequiresConfig(t *testing.T) {
	_, err := NewServices(nil)
	require.Error(t, err)

	_, err = NewServices(&ServiceDeps{})
	require.Error(t, err)
}

func TestNewServices_InvalidBaseURL(t *testing.T) {
	cfg := testConfig(t)
	cfg.API.BaseURL = "not a url"

	_, err := NewServices(&ServiceDeps{Config: cfg})
	require.Error(t, err)
}
