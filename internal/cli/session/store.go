package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const service = "rentwheels-cli"

// Store persists the session across runs. Implementations hold two
// independently keyed values: the bearer token and the serialized user record.
type Store interface {
	// Load returns the persisted session. Missing or unreadable values are
	// never an error; they degrade to an unauthenticated session.
	Load() Session
	// Save persists an authenticated session, replacing any previous one.
	Save(Session) error
	// Clear removes both values. Clearing an empty store is not an error.
	Clear() error
}

// KeyringStore keeps the session in the OS keychain/credential manager,
// keyed per API host so sessions against different deployments don't clobber
// each other.
type KeyringStore struct {
	host string
}

// NewKeyringStore creates a store scoped to the given API host.
func NewKeyringStore(host string) *KeyringStore {
	return &KeyringStore{host: host}
}

func (s *KeyringStore) tokenKey() string {
	return fmt.Sprintf("token-%s", s.host)
}

func (s *KeyringStore) userKey() string {
	return fmt.Sprintf("user-%s", s.host)
}

// Load reads both values and reassembles the session. A missing token,
// missing user record, or user record that doesn't parse all yield an
// unauthenticated session; stale half-written state is never surfaced.
func (s *KeyringStore) Load() Session {
	token, err := keyring.Get(service, s.tokenKey())
	if err != nil {
		return Session{}
	}

	raw, err := keyring.Get(service, s.userKey())
	if err != nil {
		return Session{}
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return Session{}
	}

	sess := Session{User: &user, Token: token}
	if !sess.Authenticated() {
		return Session{}
	}
	return sess
}

// Save persists the session. The user record is written before the token so
// an interrupted save can never leave a token without an owner.
func (s *KeyringStore) Save(sess Session) error {
	if !sess.Authenticated() {
		return errors.New("refusing to save unauthenticated session")
	}

	raw, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("failed to serialize user record: %w", err)
	}

	if err := keyring.Set(service, s.userKey(), string(raw)); err != nil {
		return fmt.Errorf("failed to save user record: %w", err)
	}
	if err := keyring.Set(service, s.tokenKey(), sess.Token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Clear removes both values from the keyring.
func (s *KeyringStore) Clear() error {
	if err := keyring.Delete(service, s.tokenKey()); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	if err := keyring.Delete(service, s.userKey()); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete user record: %w", err)
	}
	return nil
}
