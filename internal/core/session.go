package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chainfleet/jobctl/internal/domain/model"
)

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Repo   CredentialRepository
	API    NodeAPI
	Logger *slog.Logger

	// Now is the clock used for expiry checks. Defaults to time.Now.
	Now func() time.Time
}

// SessionService obtains and caches the session credential for the remote
// API. A persisted, unexpired record is returned without any network call;
// otherwise it performs exactly one login and overwrites the cache with the
// result.
type SessionService struct {
	repo   CredentialRepository
	api    NodeAPI
	logger *slog.Logger
	now    func() time.Time
}

// NewSessionService constructs a new service. Repo and API are required.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	if opts.Repo == nil {
		panic("session service requires a credential repository")
	}
	if opts.API == nil {
		panic("session service requires a node API client")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &SessionService{repo: opts.Repo, api: opts.API, logger: logger, now: now}
}

// GetValidToken returns a usable credential, logging in when the cache is
// empty or stale. Login failure surfaces as *AuthError; the caller decides
// whether to abort.
func (s *SessionService) GetValidToken(ctx context.Context) (model.Credential, error) {
	cred, err := s.repo.Load(ctx)
	switch {
	case err == nil:
		if cred.Valid(s.now()) {
			s.logger.Debug("using cached session credential", "expires", cred.ExpiresAt)
			return cred, nil
		}
		s.logger.Info("cached session credential expired, logging in")
	case errors.Is(err, ErrNoCredential):
		s.logger.Info("no cached session credential, logging in")
	default:
		// A corrupt or unreadable cache is not fatal; fall through to login
		// and let the subsequent Save repair it.
		s.logger.Warn("load cached credential failed, logging in", "error", err)
	}

	return s.login(ctx)
}

func (s *SessionService) login(ctx context.Context) (model.Credential, error) {
	cred, err := s.api.Login(ctx)
	if err != nil {
		var authErr *AuthError
		if errors.As(err, &authErr) {
			return model.Credential{}, err
		}
		return model.Credential{}, &AuthError{Err: err}
	}

	if saveErr := s.repo.Save(ctx, cred); saveErr != nil {
		return model.Credential{}, fmt.Errorf("save credential: %w", saveErr)
	}
	s.logger.Info("session credential saved", "cookie", cred.CookieName, "expires", cred.ExpiresAt)
	return cred, nil
}
