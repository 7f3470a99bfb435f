package session

import (
	"errors"
	"strings"
	"time"

	"github.com/avlasov/marketlens/pkg/catalog"
)

// MinProducts is the minimum number of distinct products a session must
// compare.
const MinProducts = 2

// Draft carries the fields the session-creation workflow collects before a
// session exists.
type Draft struct {
	Title       string
	Description string
	Thoughts    string
	Comment     string
	DateFrom    string
	DateTo      string
	ProductIDs  []catalog.ID
}

// Validate checks a draft and returns the first violation only; no partial
// save happens on error.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("session title is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		return errors.New("analysis goal description is required")
	}
	if strings.TrimSpace(d.Thoughts) == "" {
		return errors.New("thoughts or hypotheses are required")
	}
	if strings.TrimSpace(d.Comment) == "" {
		return errors.New("team comment is required")
	}
	if d.DateFrom == "" || d.DateTo == "" {
		return errors.New("analysis period is required")
	}
	from, errFrom := time.Parse("2006-01-02", d.DateFrom)
	to, errTo := time.Parse("2006-01-02", d.DateTo)
	if errFrom != nil || errTo != nil {
		return errors.New("analysis period dates must be YYYY-MM-DD")
	}
	if from.After(to) {
		return errors.New("period start cannot be after period end")
	}

	filled := make([]catalog.ID, 0, len(d.ProductIDs))
	for _, id := range d.ProductIDs {
		if id != "" {
			filled = append(filled, id)
		}
	}
	if len(filled) < MinProducts {
		return errors.New("at least 2 products are required for comparison")
	}
	unique := make(map[catalog.ID]struct{}, len(filled))
	for _, id := range filled {
		unique[id] = struct{}{}
	}
	if len(unique) != len(filled) {
		return errors.New("products must be distinct for a meaningful comparison")
	}

	return nil
}

// NewFromDraft builds a canonical custom session from a validated draft.
func NewFromDraft(d Draft, userID catalog.ID) Session {
	now := time.Now().UTC()

	ids := make([]catalog.ID, 0, len(d.ProductIDs))
	for _, id := range d.ProductIDs {
		if id != "" {
			ids = append(ids, id)
		}
	}

	return Session{
		ID:          NewID(),
		UserID:      userID,
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Thoughts:    strings.TrimSpace(d.Thoughts),
		Comment:     strings.TrimSpace(d.Comment),
		Period:      &Period{From: d.DateFrom, To: d.DateTo},
		ProductIDs:  ids,
		CreatedAt:   now,
		UpdatedAt:   now,
		Type:        TypeCustom,
	}
}
