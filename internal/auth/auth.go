// Package auth manages the authenticated-user slot. Credentials are
// compared in plaintext against the static user dataset; this tool has no
// server-side security model.
package auth

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/avlasov/marketlens/pkg/catalog"
	"github.com/avlasov/marketlens/pkg/storage"
)

// Storage slot names shared with the engine's persisted state.
const (
	CurrentUserSlot = "currentUser"
	UsersSlot       = "users"
)

// RoleAdmin is the role granting access to the administration surface.
const RoleAdmin = "администратор"

// ErrInvalidCredentials is returned when no user matches the login and
// password pair.
var ErrInvalidCredentials = errors.New("invalid login or password")

// Manager owns the current-user slot and the cached user list.
type Manager struct {
	port   storage.Port
	logger zerolog.Logger
}

// NewManager creates a Manager over the given storage port.
func NewManager(port storage.Port, logger zerolog.Logger) *Manager {
	return &Manager{
		port:   port,
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// Login matches credentials against the fresh user directory, persists the
// matched user and refreshes the cached user list.
func (m *Manager) Login(users []catalog.User, login, password string) (catalog.User, error) {
	if data, err := json.Marshal(users); err == nil {
		if err := m.port.Save(UsersSlot, data); err != nil {
			m.logger.Warn().Err(err).Msg("Failed to refresh cached user list")
		}
	}

	for _, u := range users {
		if u.Login != "" && u.Login == login && u.Password == password {
			data, err := json.Marshal(u)
			if err != nil {
				return catalog.User{}, err
			}
			if err := m.port.Save(CurrentUserSlot, data); err != nil {
				return catalog.User{}, err
			}
			m.logger.Info().Str("login", login).Msg("User logged in")
			return u, nil
		}
	}

	return catalog.User{}, ErrInvalidCredentials
}

// Current returns the persisted authenticated user, if any. A corrupted
// slot is treated as logged out.
func (m *Manager) Current() (catalog.User, bool) {
	data, found, err := m.port.Load(CurrentUserSlot)
	if err != nil || !found || len(data) == 0 {
		return catalog.User{}, false
	}

	var u catalog.User
	if err := json.Unmarshal(data, &u); err != nil {
		m.logger.Error().Err(err).Msg("Current user slot is corrupted, treating as logged out")
		return catalog.User{}, false
	}
	if u.ID == "" {
		return catalog.User{}, false
	}
	return u, true
}

// Logout clears the current-user slot.
func (m *Manager) Logout() {
	if err := m.port.Save(CurrentUserSlot, nil); err != nil {
		m.logger.Error().Err(err).Msg("Failed to clear current user")
	}
}

// IsAdmin reports whether the authenticated user holds the admin role.
func (m *Manager) IsAdmin() bool {
	u, ok := m.Current()
	return ok && u.Role == RoleAdmin
}

// UpdateProfile replaces the authenticated user's record wholesale and
// rewrites the matching entry in the cached user list.
func (m *Manager) UpdateProfile(updated catalog.User) error {
	data, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	if err := m.port.Save(CurrentUserSlot, data); err != nil {
		return err
	}

	cached, found, err := m.port.Load(UsersSlot)
	if err != nil || !found {
		return nil
	}
	var users []catalog.User
	if err := json.Unmarshal(cached, &users); err != nil {
		m.logger.Warn().Err(err).Msg("Cached user list is corrupted, skipping rewrite")
		return nil
	}
	for i, u := range users {
		if u.ID == updated.ID {
			users[i] = updated
		}
	}
	if data, err := json.Marshal(users); err == nil {
		if err := m.port.Save(UsersSlot, data); err != nil {
			m.logger.Warn().Err(err).Msg("Failed to rewrite cached user list")
		}
	}
	return nil
}
