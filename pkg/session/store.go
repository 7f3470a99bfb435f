package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/avlasov/marketlens/internal/observability"
	"github.com/avlasov/marketlens/pkg/catalog"
	"github.com/avlasov/marketlens/pkg/storage"
)

// SlotKey names the storage slot holding the custom-session collection.
const SlotKey = "customSessions"

// ErrNotFound is returned by update operations when no session matches the
// given id. Storage is left untouched in that case.
var ErrNotFound = errors.New("session not found")

// AttachResult reports the outcome of an attach-product operation. Exactly
// one of Success, AlreadyExists and SessionNotFound holds.
type AttachResult struct {
	Success         bool
	AlreadyExists   bool
	SessionNotFound bool
	Session         *Session
}

// Store is the only reader/writer of the persisted custom-session
// collection. It assumes single-process access; the load/mutate/save cycle
// is not atomic and overlapping writers lose updates (last save wins).
type Store struct {
	port   storage.Port
	logger zerolog.Logger
	now    func() time.Time
}

// NewStore creates a Store over the given storage port.
func NewStore(port storage.Port, logger zerolog.Logger) *Store {
	observability.EnsureRegistered()
	return &Store{
		port:   port,
		logger: logger.With().Str("component", "session-store").Logger(),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// LoadAll reads the persisted collection. Missing data, parse failures and
// non-list content all degrade to an empty collection; corruption is logged
// and never raised. Every element passes through the normalizer and null
// entries are dropped.
func (st *Store) LoadAll() []Session {
	start := st.now()
	defer func() { observability.ObserveStoreLoad(time.Since(start)) }()

	data, found, err := st.port.Load(SlotKey)
	if err != nil {
		st.logger.Error().Err(err).Msg("Failed to load custom sessions")
		return []Session{}
	}
	if !found {
		return []Session{}
	}

	var rawSessions []map[string]interface{}
	if err := json.Unmarshal(data, &rawSessions); err != nil {
		st.logger.Error().Err(err).Msg("Custom sessions slot is corrupted, treating as empty")
		return []Session{}
	}

	sessions := make([]Session, 0, len(rawSessions))
	for _, raw := range rawSessions {
		if s := NormalizeAt(raw, start); s != nil {
			sessions = append(sessions, *s)
		}
	}

	observability.SetCustomSessions(len(sessions))
	return sessions
}

// SaveAll serializes and persists the full collection, replacing prior
// content. A failed write is logged and swallowed; the caller's in-memory
// view may diverge from storage until a later save succeeds.
func (st *Store) SaveAll(sessions []Session) {
	start := st.now()
	defer func() { observability.ObserveStoreSave(time.Since(start)) }()

	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		observability.IncStoreWriteError()
		st.logger.Error().Err(err).Msg("Failed to serialize custom sessions")
		return
	}
	if err := st.port.Save(SlotKey, data); err != nil {
		observability.IncStoreWriteError()
		st.logger.Error().Err(err).Msg("Failed to save custom sessions")
		return
	}

	observability.SetCustomSessions(len(sessions))
}

// Append normalizes the session and adds it to the persisted collection.
func (st *Store) Append(s Session) Session {
	normalized := Canonicalize(s, st.now())

	sessions := st.LoadAll()
	sessions = append(sessions, normalized)
	st.SaveAll(sessions)

	observability.IncSessionCreated()
	st.logger.Info().
		Str("id", string(normalized.ID)).
		Int("products", len(normalized.ProductIDs)).
		Msg("Custom session appended")

	return normalized
}

// FindByID locates a session by string-normalized identifier comparison.
func (st *Store) FindByID(id catalog.ID) (Session, bool) {
	for _, s := range st.LoadAll() {
		if s.ID == id {
			return s, true
		}
	}
	return Session{}, false
}

// UpdateByID replaces the matching session with the updater's result,
// canonicalized, and persists the collection. Returns ErrNotFound without
// touching storage when no session matches.
func (st *Store) UpdateByID(id catalog.ID, updater func(Session) Session) (Session, error) {
	sessions := st.LoadAll()

	idx := -1
	for i, s := range sessions {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Session{}, ErrNotFound
	}

	updated := Canonicalize(updater(sessions[idx]), st.now())
	sessions[idx] = updated
	st.SaveAll(sessions)

	return updated, nil
}

// ReplaceByID is UpdateByID with a replacement value instead of a
// function.
func (st *Store) ReplaceByID(id catalog.ID, replacement Session) (Session, error) {
	return st.UpdateByID(id, func(Session) Session { return replacement })
}

// AttachProduct appends productID to the session's product list unless it
// is already present. updatedAt is refreshed only when the list changed.
func (st *Store) AttachProduct(sessionID, productID catalog.ID) (AttachResult, error) {
	if productID == "" {
		return AttachResult{}, errors.New("product id cannot be empty")
	}

	added := false
	updated, err := st.UpdateByID(sessionID, func(s Session) Session {
		if s.HasProduct(productID) {
			return s
		}
		added = true
		ids := make([]catalog.ID, 0, len(s.ProductIDs)+1)
		ids = append(ids, s.ProductIDs...)
		ids = append(ids, productID)
		s.ProductIDs = ids
		s.UpdatedAt = st.now()
		return s
	})
	if errors.Is(err, ErrNotFound) {
		observability.IncProductAttached("not_found")
		return AttachResult{SessionNotFound: true}, nil
	}
	if err != nil {
		return AttachResult{}, err
	}

	if !added {
		observability.IncProductAttached("already_exists")
		return AttachResult{AlreadyExists: true, Session: &updated}, nil
	}

	observability.IncProductAttached("success")
	st.logger.Info().
		Str("session", string(sessionID)).
		Str("product", string(productID)).
		Msg("Product attached to session")

	return AttachResult{Success: true, Session: &updated}, nil
}
