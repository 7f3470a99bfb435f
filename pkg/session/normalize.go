package session

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/avlasov/marketlens/pkg/catalog"
)

// Ordered candidate source keys per canonical field. Older dataset
// revisions stored sessions under Russian field names; the first key with a
// non-empty value wins.
var (
	titleAliases       = []string{"title", "название", "анализ"}
	descriptionAliases = []string{"description", "анализ"}
	commentAliases     = []string{"comment", "notes"}
	thoughtsAliases    = []string{"thoughts", "гипотезы"}
	notesAliases       = []string{"notes"}
	periodAliases      = []string{"period", "период"}
	userIDAliases      = []string{"userId", "user_id", "ownerId"}
	createdAtAliases   = []string{"createdAt", "дата_анализа"}
	updatedAtAliases   = []string{"updatedAt", "дата_анализа"}
)

// Normalize converts a raw session record of any supported shape into the
// canonical form. Returns nil for a nil input. Missing timestamps default
// to the current instant; both fields share the same fallback value.
func Normalize(raw map[string]interface{}) *Session {
	return NormalizeAt(raw, time.Now().UTC())
}

// NormalizeAt is Normalize with an explicit fallback instant, used by the
// store and by tests that need deterministic output.
func NormalizeAt(raw map[string]interface{}, now time.Time) *Session {
	if raw == nil {
		return nil
	}

	s := &Session{
		ID:          idFromAny(raw["id"]),
		UserID:      firstID(raw, userIDAliases),
		Title:       firstString(raw, titleAliases),
		Description: firstString(raw, descriptionAliases),
		Comment:     firstString(raw, commentAliases),
		Thoughts:    firstString(raw, thoughtsAliases),
		Notes:       firstString(raw, notesAliases),
		Period:      periodFrom(raw),
		ProductIDs:  productIDsFrom(raw),
		CreatedAt:   firstTime(raw, createdAtAliases, now),
		UpdatedAt:   firstTime(raw, updatedAtAliases, now),
		Type:        firstString(raw, []string{"type"}),
	}

	if s.UserID == "" {
		s.UserID = nestedUserID(raw)
	}
	if s.Type == "" {
		s.Type = TypeCustom
	}

	return s
}

// Canonicalize restores the total-field invariant on an already-typed
// session, e.g. after an updater callback replaced it wholesale.
func Canonicalize(s Session, now time.Time) Session {
	if s.ProductIDs == nil {
		s.ProductIDs = []catalog.ID{}
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}
	if s.Type == "" {
		s.Type = TypeCustom
	}
	return s
}

// firstString returns the first non-empty string among the alias keys.
func firstString(raw map[string]interface{}, aliases []string) string {
	for _, key := range aliases {
		if v, ok := raw[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// firstID returns the first resolvable identifier among the alias keys.
func firstID(raw map[string]interface{}, aliases []string) catalog.ID {
	for _, key := range aliases {
		if id := idFromAny(raw[key]); id != "" {
			return id
		}
	}
	return ""
}

// firstTime returns the first parseable timestamp among the alias keys,
// falling back to now.
func firstTime(raw map[string]interface{}, aliases []string, now time.Time) time.Time {
	for _, key := range aliases {
		if v, ok := raw[key].(string); ok && v != "" {
			if t, ok := parseTime(v); ok {
				return t
			}
		}
	}
	return now
}

// nestedUserID handles the legacy shape where the owner arrived as an
// embedded user object.
func nestedUserID(raw map[string]interface{}) catalog.ID {
	owner, ok := raw["пользователь"].(map[string]interface{})
	if !ok {
		return ""
	}
	return idFromAny(owner["id"])
}

// periodFrom extracts the optional {from, to} window.
func periodFrom(raw map[string]interface{}) *Period {
	for _, key := range periodAliases {
		m, ok := raw[key].(map[string]interface{})
		if !ok {
			continue
		}
		from, _ := m["from"].(string)
		to, _ := m["to"].(string)
		return &Period{From: from, To: to}
	}
	return nil
}

// productIDsFrom resolves product references to bare identifiers, whether
// the raw record stored a list of ids or a list of embedded product
// objects.
func productIDsFrom(raw map[string]interface{}) []catalog.ID {
	if list, ok := raw["productIds"].([]interface{}); ok {
		return idsFromList(list, false)
	}
	if list, ok := raw["products"].([]interface{}); ok {
		return idsFromList(list, true)
	}
	return []catalog.ID{}
}

func idsFromList(list []interface{}, embedded bool) []catalog.ID {
	ids := make([]catalog.ID, 0, len(list))
	for _, item := range list {
		v := item
		if embedded {
			if obj, ok := item.(map[string]interface{}); ok {
				v = obj["id"]
			}
		}
		if id := idFromAny(v); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// idFromAny converts a raw identifier value (string or number) to an ID.
// Numbers are formatted without an exponent so that 1 and "1" compare
// equal.
func idFromAny(v interface{}) catalog.ID {
	switch val := v.(type) {
	case string:
		return catalog.ID(val)
	case float64:
		return catalog.ID(strconv.FormatFloat(val, 'f', -1, 64))
	case int:
		return catalog.ID(strconv.Itoa(val))
	case json.Number:
		return catalog.ID(val.String())
	case catalog.ID:
		return val
	default:
		return ""
	}
}

// parseTime accepts the timestamp layouts seen in the datasets: RFC 3339
// and bare dates.
func parseTime(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
