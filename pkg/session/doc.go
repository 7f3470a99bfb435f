// Package session owns the canonical analytical-session schema and the
// persisted custom-session collection.
//
// Invariants:
// - Normalized sessions have every canonical field populated; legacy field
//   names from older dataset revisions are resolved through ordered alias
//   lists.
// - The store is the only reader/writer of the custom-session slot.
// - AttachProduct never introduces a duplicate product reference and only
//   refreshes updatedAt when the session actually changed.
//
// Usage:
//
//	store := session.NewStore(port, zerolog.Nop())
//	sessions := store.LoadAll()
//	res, _ := store.AttachProduct("custom-1", "42")
//	_ = res.Success
package session
