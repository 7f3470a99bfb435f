package session

import (
	"time"

	"github.com/avlasov/marketlens/pkg/catalog"
)

// Patch is an explicit partial update for a canonical session. Nil fields
// leave the current value untouched; the result is always re-canonicalized
// so the total-field invariant survives the update.
type Patch struct {
	Title       *string
	Description *string
	Comment     *string
	Thoughts    *string
	Notes       *string
	Period      **Period
	ProductIDs  *[]catalog.ID
	UpdatedAt   *time.Time
}

// ApplyPatch merges a patch into a session and returns the resulting
// record. The input session is not modified.
func ApplyPatch(s Session, p Patch) Session {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Comment != nil {
		s.Comment = *p.Comment
	}
	if p.Thoughts != nil {
		s.Thoughts = *p.Thoughts
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	if p.Period != nil {
		s.Period = *p.Period
	}
	if p.ProductIDs != nil {
		ids := make([]catalog.ID, len(*p.ProductIDs))
		copy(ids, *p.ProductIDs)
		s.ProductIDs = ids
	}
	if p.UpdatedAt != nil {
		s.UpdatedAt = *p.UpdatedAt
	}
	return Canonicalize(s, time.Now().UTC())
}
