package repository

import (
	"encoding/json"
	"fmt"

	"focusapp/internal/models"
	"focusapp/internal/storage"
)

const (
	usersKey   = "users"
	sessionKey = "sessionId"
)

// RosterRepository persists the full user roster as a single JSON blob plus
// a separately stored active-session id. The roster always lives in the
// long-lived store; the session id goes to the long-lived store when the
// user chose "remember me", otherwise to the process-scoped store.
type RosterRepository struct {
	local   storage.Store
	session storage.Store
}

// NewRosterRepository creates a new roster repository over the two stores.
func NewRosterRepository(local, session storage.Store) *RosterRepository {
	return &RosterRepository{
		local:   local,
		session: session,
	}
}

// LoadUsers reads the persisted roster. A missing key returns (nil, nil);
// malformed JSON returns an error so the caller can fall back to defaults.
func (r *RosterRepository) LoadUsers() ([]models.User, error) {
	raw, ok, err := r.local.Get(usersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("failed to parse saved roster: %w", err)
	}
	return users, nil
}

// SaveUsers rewrites the whole roster. Every mutation persists through here;
// there are no partial writes.
func (r *RosterRepository) SaveUsers(users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	if err := r.local.Set(usersKey, string(raw)); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}
	return nil
}

// SessionID returns the persisted active-session user id, checking the
// long-lived store first and then the process-scoped one.
func (r *RosterRepository) SessionID() (string, bool) {
	if id, ok, err := r.local.Get(sessionKey); err == nil && ok {
		return id, true
	}
	if id, ok, err := r.session.Get(sessionKey); err == nil && ok {
		return id, true
	}
	return "", false
}

// SaveSessionID stores the session id in the long-lived store when remember
// is set, otherwise in the process-scoped store.
func (r *RosterRepository) SaveSessionID(id string, remember bool) error {
	if remember {
		return r.local.Set(sessionKey, id)
	}
	return r.session.Set(sessionKey, id)
}

// UpdateSessionID overwrites an already-persisted session id in whichever
// store holds one. It never creates a session that did not exist.
func (r *RosterRepository) UpdateSessionID(id string) error {
	if _, ok, err := r.local.Get(sessionKey); err == nil && ok {
		return r.local.Set(sessionKey, id)
	}
	if _, ok, err := r.session.Get(sessionKey); err == nil && ok {
		return r.session.Set(sessionKey, id)
	}
	return nil
}

// ClearSessionID removes the session id from both stores. The roster is
// left untouched.
func (r *RosterRepository) ClearSessionID() error {
	if err := r.local.Remove(sessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if err := r.session.Remove(sessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
