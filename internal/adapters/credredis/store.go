// Package credredis provides a Redis-backed credential repository for
// deployments where several hosts share one session cache.
package credredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chainfleet/jobctl/internal/core"
	"github.com/chainfleet/jobctl/internal/domain/model"
)

const defaultKey = "jobctl:session"

// Store persists the single credential record under one Redis key.
// The key TTL tracks the credential expiry so Redis evicts stale records on
// its own.
type Store struct {
	client redis.UniversalClient
	key    string
}

var _ core.CredentialRepository = (*Store)(nil)

// NewStore creates a Redis-backed credential store using the default key.
func NewStore(client redis.UniversalClient) *Store {
	return &Store{client: client, key: defaultKey}
}

// NewStoreWithKey creates a Redis-backed credential store with a custom key.
func NewStoreWithKey(client redis.UniversalClient, key string) *Store {
	if key == "" {
		key = defaultKey
	}
	return &Store{client: client, key: key}
}

// Load reads the credential record. Returns core.ErrNoCredential when the
// key is absent or the stored record has already expired.
func (s *Store) Load(ctx context.Context) (model.Credential, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Credential{}, core.ErrNoCredential
		}
		return model.Credential{}, fmt.Errorf("redis get: %w", err)
	}

	var cred model.Credential
	if unmarshalErr := json.Unmarshal([]byte(data), &cred); unmarshalErr != nil {
		return model.Credential{}, fmt.Errorf("unmarshal credential: %w", unmarshalErr)
	}

	// The key TTL normally evicts stale records; a record can still outlive
	// its expiry when the server clock drifts, so re-check here.
	if time.Now().After(cred.ExpiresAt) {
		if delErr := s.client.Del(ctx, s.key).Err(); delErr != nil {
			return model.Credential{}, fmt.Errorf("cleanup expired credential: %w", delErr)
		}
		return model.Credential{}, core.ErrNoCredential
	}

	return cred, nil
}

// Save overwrites the credential record. Refuses records that are already
// expired since Redis cannot set a non-positive TTL.
func (s *Store) Save(ctx context.Context, cred model.Credential) error {
	if cred.CookieName == "" || cred.Token == "" {
		return errors.New("credential cookie name and token cannot be empty")
	}

	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("marshal credential: %w", err)
	}

	ttl := time.Until(cred.ExpiresAt)
	if ttl <= 0 {
		return errors.New("credential is expired")
	}

	return s.client.Set(ctx, s.key, data, ttl).Err()
}
