// Package storage provides the persistence port used by the session store
// and the auth layer. A Port maps named slots to raw byte payloads; callers
// own serialization.
//
// Invariants:
// - Load reports a missing slot via the found flag, not an error.
// - Save replaces the full slot content.
// - Implementations are safe for use from a single process.
package storage

// Port is a minimal load/save capability over a string key.
type Port interface {
	// Load returns the raw payload for key. found is false when the slot
	// has never been written.
	Load(key string) (data []byte, found bool, err error)

	// Save replaces the payload for key.
	Save(key string, data []byte) error
}
