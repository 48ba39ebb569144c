package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/chainfleet/jobctl/config"
	"github.com/chainfleet/jobctl/internal/adapters/credfile"
	"github.com/chainfleet/jobctl/internal/adapters/credredis"
	"github.com/chainfleet/jobctl/internal/adapters/nodeapi"
	"github.com/chainfleet/jobctl/internal/core"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	API      *nodeapi.Client
	Sessions *core.SessionService
	Poller   *core.RunPoller
	Jobs     *core.JobService

	// redisClient is non-nil only when the redis credential backend is
	// configured; Close releases it.
	redisClient *redis.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// NewServices wires the credential store, the node API client and the
// services on top of them.
func NewServices(deps *ServiceDeps) (*ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return nil, fmt.Errorf("service deps with config are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	apiClient, err := nodeapi.NewClient(nodeapi.Config{
		BaseURL:  cfg.API.BaseURL,
		Email:    cfg.API.Email,
		Password: cfg.API.Password,
		Timeout:  cfg.API.RequestTimeout,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create node api client: %w", err)
	}

	container := &ServiceContainer{API: apiClient}

	repo, err := buildCredentialRepository(cfg, container)
	if err != nil {
		return nil, err
	}

	container.Sessions = core.NewSessionService(core.SessionServiceOptions{
		Repo:   repo,
		API:    apiClient,
		Logger: logger,
	})
	container.Poller = core.NewRunPoller(core.RunPollerOptions{
		API:      apiClient,
		Logger:   logger,
		Interval: cfg.Poll.Interval,
	})
	container.Jobs = core.NewJobService(core.JobServiceOptions{
		API:    apiClient,
		Tokens: container.Sessions,
		Poller: container.Poller,
		Logger: logger,
	})

	return container, nil
}

// Close releases any connections the container holds.
func (c *ServiceContainer) Close() error {
	if c == nil || c.redisClient == nil {
		return nil
	}
	if err := c.redisClient.Close(); err != nil {
		return fmt.Errorf("close redis client: %w", err)
	}
	return nil
}

func buildCredentialRepository(cfg *config.AppConfig, container *ServiceContainer) (core.CredentialRepository, error) {
	switch cfg.Credentials.Backend {
	case config.CredentialBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Credentials.Redis.Addr,
			Password: cfg.Credentials.Redis.Password,
			DB:       cfg.Credentials.Redis.DB,
		})
		container.redisClient = client
		return credredis.NewStoreWithKey(client, cfg.Credentials.Redis.Key), nil
	case config.CredentialBackendFile:
		fallthrough
	default:
		store, err := credfile.NewStore(cfg.Credentials.FilePath)
		if err != nil {
			return nil, fmt.Errorf("create credential file store: %w", err)
		}
		return store, nil
	}
}
