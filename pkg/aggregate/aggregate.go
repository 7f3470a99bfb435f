// Package aggregate merges built-in and user-created sessions into one
// annotated, ordered view. The result is a pure function of its inputs:
// identical inputs produce an identical ordering.
package aggregate

import (
	"sort"
	"time"

	"github.com/avlasov/marketlens/pkg/catalog"
	"github.com/avlasov/marketlens/pkg/session"
)

// DefaultAvatar is the stock avatar substituted when a user record carries
// none.
const DefaultAvatar = "/data/img/avatars/stock_user_avatar.png"

// Guest values identify the sentinel owner attached when a session's user
// cannot be resolved against the directory.
const (
	UnknownAnalystName = "Неизвестный аналитик"
	GuestRole          = "гость"
)

// UserView is the denormalized owner annotation attached to every merged
// session.
type UserView struct {
	ID          catalog.ID `json:"id"`
	DisplayName string     `json:"displayName"`
	Role        string     `json:"role"`
	Avatar      string     `json:"avatar"`
}

// Annotated is a canonical session with its resolved owner. User is never
// nil-equivalent: resolution failures substitute the unknown-analyst
// sentinel.
type Annotated struct {
	session.Session
	User UserView `json:"user"`
}

// Build merges custom and built-in sessions, annotates owners and orders
// the result by most-recently-touched first. Custom sessions precede
// built-ins at equal timestamps.
func Build(builtIn []map[string]interface{}, custom []session.Session, users []catalog.User) []Annotated {
	return BuildAt(builtIn, custom, users, time.Now().UTC())
}

// BuildAt is Build with an explicit normalization fallback instant.
func BuildAt(builtIn []map[string]interface{}, custom []session.Session, users []catalog.User, now time.Time) []Annotated {
	merged := make([]Annotated, 0, len(custom)+len(builtIn))

	// Custom sessions surface first at equal sort priority
	for _, s := range custom {
		merged = append(merged, Annotated{
			Session: session.Canonicalize(s, now),
			User:    resolveUser(s.UserID, users),
		})
	}

	// Built-ins may use the same legacy shapes as custom sessions
	for _, raw := range builtIn {
		s := session.NormalizeAt(raw, now)
		if s == nil {
			continue
		}
		merged = append(merged, Annotated{
			Session: *s,
			User:    resolveUser(s.UserID, users),
		})
	}

	// Stable: ties keep the custom-first concatenation order
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Touched().After(merged[j].Touched())
	})

	return merged
}

// resolveUser looks the owner up by exact identifier match, substituting
// the guest sentinel when the directory has no match.
func resolveUser(userID catalog.ID, users []catalog.User) UserView {
	for _, u := range users {
		if u.ID == userID {
			avatar := u.Avatar
			if avatar == "" {
				avatar = DefaultAvatar
			}
			return UserView{
				ID:          u.ID,
				DisplayName: u.DisplayName(),
				Role:        u.Role,
				Avatar:      avatar,
			}
		}
	}

	id := userID
	if id == "" {
		id = "unknown"
	}
	return UserView{
		ID:          id,
		DisplayName: UnknownAnalystName,
		Role:        GuestRole,
		Avatar:      DefaultAvatar,
	}
}
