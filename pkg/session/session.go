package session

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/avlasov/marketlens/pkg/catalog"
)

// TypeCustom marks user-created sessions; only sessions of this type are
// persisted. Built-in sessions live in the read-only seed dataset.
const TypeCustom = "custom"

// Period is an optional observation window attached to a session. Bounds
// are date strings (YYYY-MM-DD); either may be empty.
type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Session is the canonical record every raw session shape normalizes into.
// All fields are populated after normalization; free-text fields default to
// the empty string and timestamps to the normalization instant.
type Session struct {
	ID          catalog.ID   `json:"id"`
	UserID      catalog.ID   `json:"userId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Comment     string       `json:"comment"`
	Thoughts    string       `json:"thoughts"`
	Notes       string       `json:"notes"`
	Period      *Period      `json:"period"`
	ProductIDs  []catalog.ID `json:"productIds"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Type        string       `json:"type"`
}

// Touched is the effective last-modified instant used for ordering and date
// filtering: the later of UpdatedAt and CreatedAt.
func (s Session) Touched() time.Time {
	if s.UpdatedAt.After(s.CreatedAt) {
		return s.UpdatedAt
	}
	return s.CreatedAt
}

// HasProduct reports whether the session already references productID.
func (s Session) HasProduct(productID catalog.ID) bool {
	for _, id := range s.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// NewID generates a unique identifier for a user-created session.
func NewID() catalog.ID {
	id, err := gonanoid.New()
	if err != nil {
		// nanoid only fails when the entropy source does; fall back to a
		// timestamp id rather than aborting session creation.
		id = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return catalog.ID("custom-" + id)
}
