package badger

import (
	"fmt"

	"github.com/timshannon/badgerhold/v4"

	"github.com/zenmoney/zenmoney-cli/internal/common"
	"github.com/zenmoney/zenmoney-cli/internal/interfaces"
)

// tokenKey is the single persisted slot holding the bearer credential.
const tokenKey = "auth_token"

// KVEntry represents a key-value pair stored in BadgerDB.
type KVEntry struct {
	Key   string `badgerhold:"key"`
	Value string
}

// credentialStorage persists the bearer token across runs. Set on login,
// cleared on logout, read-only everywhere else.
type credentialStorage struct {
	store  *Store
	logger *common.Logger
}

// NewCredentialStorage creates a CredentialStore backed by BadgerHold.
func NewCredentialStorage(store *Store, logger *common.Logger) interfaces.CredentialStore {
	return &credentialStorage{store: store, logger: logger}
}

// Token returns the stored bearer token, or "" when no session exists.
func (s *credentialStorage) Token() string {
	var entry KVEntry
	err := s.store.db.Get(tokenKey, &entry)
	if err != nil {
		if err != badgerhold.ErrNotFound {
			s.logger.Warn().Err(err).Msg("Failed to read credential slot")
		}
		return ""
	}
	return entry.Value
}

func (s *credentialStorage) SetToken(token string) error {
	entry := KVEntry{Key: tokenKey, Value: token}
	if err := s.store.db.Upsert(tokenKey, &entry); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	s.logger.Debug().Msg("Credential stored")
	return nil
}

func (s *credentialStorage) ClearToken() error {
	err := s.store.db.Delete(tokenKey, KVEntry{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	s.logger.Debug().Msg("Credential cleared")
	return nil
}
