// Package credfile provides the flat-file credential repository.
package credfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/chainfleet/jobctl/internal/core"
	"github.com/chainfleet/jobctl/internal/domain/model"
)

// Store persists the single credential record as a JSON file. Save is a full
// overwrite; the file never holds more than one record. The layout matches
// the legacy token file (cookie_name, token, expires).
type Store struct {
	path string
}

var _ core.CredentialRepository = (*Store)(nil)

// NewStore creates a file-backed credential store at the given path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("credential file path is required")
	}
	return &Store{path: path}, nil
}

// Load reads the persisted credential record. Returns core.ErrNoCredential
// when the file does not exist.
func (s *Store) Load(_ context.Context) (model.Credential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Credential{}, core.ErrNoCredential
		}
		return model.Credential{}, fmt.Errorf("read credential file: %w", err)
	}

	var cred model.Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return model.Credential{}, fmt.Errorf("parse credential file: %w", err)
	}
	return cred, nil
}

// Save overwrites the credential file with the given record. The file is
// written with owner-only permissions since the token is a bearer credential.
func (s *Store) Save(_ context.Context, cred model.Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("marshal credential: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	return nil
}
