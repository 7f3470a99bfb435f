package session

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasov/marketlens/pkg/catalog"
	"github.com/avlasov/marketlens/pkg/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.MemStore) {
	t.Helper()
	port := storage.NewMemStore()
	return NewStore(port, zerolog.Nop()), port
}

func TestStore_LoadAllEmptySlot(t *testing.T) {
	st, _ := newTestStore(t)
	sessions := st.LoadAll()
	assert.NotNil(t, sessions)
	assert.Empty(t, sessions)
}

func TestStore_LoadAllCorruptedSlot(t *testing.T) {
	st, port := newTestStore(t)

	tests := []struct {
		name    string
		payload string
	}{
		{"unparsable", "{not json"},
		{"non-list", `{"id": "custom-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, port.Save(SlotKey, []byte(tt.payload)))
			assert.Empty(t, st.LoadAll())
		})
	}
}

func TestStore_LoadAllDropsNullEntries(t *testing.T) {
	st, port := newTestStore(t)
	require.NoError(t, port.Save(SlotKey, []byte(`[{"id": "custom-1"}, null]`)))

	sessions := st.LoadAll()
	require.Len(t, sessions, 1)
	assert.Equal(t, catalog.ID("custom-1"), sessions[0].ID)
}

func TestStore_LoadAllNormalizesLegacyShapes(t *testing.T) {
	st, port := newTestStore(t)
	require.NoError(t, port.Save(SlotKey, []byte(
		`[{"id": "custom-1", "название": "Старая сессия", "products": [{"id": 4}]}]`,
	)))

	sessions := st.LoadAll()
	require.Len(t, sessions, 1)
	assert.Equal(t, "Старая сессия", sessions[0].Title)
	assert.Equal(t, []catalog.ID{"4"}, sessions[0].ProductIDs)
}

func TestStore_AppendThenLoad(t *testing.T) {
	st, _ := newTestStore(t)

	appended := st.Append(Session{ID: "custom-1", Title: "Первая"})
	assert.Equal(t, TypeCustom, appended.Type)
	assert.False(t, appended.CreatedAt.IsZero())

	sessions := st.LoadAll()
	require.Len(t, sessions, 1)
	assert.Equal(t, "Первая", sessions[0].Title)
}

func TestStore_UpdateByID(t *testing.T) {
	st, _ := newTestStore(t)
	st.Append(Session{ID: "custom-1", Title: "До"})

	updated, err := st.UpdateByID("custom-1", func(s Session) Session {
		s.Title = "После"
		return s
	})
	require.NoError(t, err)
	assert.Equal(t, "После", updated.Title)

	got, ok := st.FindByID("custom-1")
	require.True(t, ok)
	assert.Equal(t, "После", got.Title)
}

func TestStore_UpdateByIDNotFound(t *testing.T) {
	st, port := newTestStore(t)
	st.Append(Session{ID: "custom-1"})
	before, _, _ := port.Load(SlotKey)

	_, err := st.UpdateByID("missing", func(s Session) Session { return s })
	assert.ErrorIs(t, err, ErrNotFound)

	// Storage untouched on not-found
	after, _, _ := port.Load(SlotKey)
	assert.Equal(t, before, after)
}

func TestStore_ReplaceByID(t *testing.T) {
	st, _ := newTestStore(t)
	st.Append(Session{ID: "custom-1", Title: "До"})

	replaced, err := st.ReplaceByID("custom-1", Session{ID: "custom-1", Title: "Новая"})
	require.NoError(t, err)
	assert.Equal(t, "Новая", replaced.Title)
	// Replacement is canonicalized
	assert.Equal(t, TypeCustom, replaced.Type)
	assert.NotNil(t, replaced.ProductIDs)
}

func TestStore_AttachProduct(t *testing.T) {
	st, _ := newTestStore(t)
	st.Append(Session{ID: "custom-1", ProductIDs: []catalog.ID{"1"}})

	res, err := st.AttachProduct("custom-1", "2")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.AlreadyExists)
	require.NotNil(t, res.Session)
	assert.Equal(t, []catalog.ID{"1", "2"}, res.Session.ProductIDs)

	// Second call with the same arguments reports alreadyExists
	res, err = st.AttachProduct("custom-1", "2")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.True(t, res.AlreadyExists)

	// Exactly one occurrence of the product afterwards
	got, ok := st.FindByID("custom-1")
	require.True(t, ok)
	count := 0
	for _, id := range got.ProductIDs {
		if id == "2" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestStore_AttachProductRefreshesUpdatedAtOnChangeOnly(t *testing.T) {
	st, _ := newTestStore(t)

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	current := base
	st.now = func() time.Time { return current }

	st.Append(Session{ID: "custom-1"})

	current = base.Add(time.Hour)
	res, err := st.AttachProduct("custom-1", "5")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, base.Add(time.Hour), res.Session.UpdatedAt)

	current = base.Add(2 * time.Hour)
	res, err = st.AttachProduct("custom-1", "5")
	require.NoError(t, err)
	require.True(t, res.AlreadyExists)
	assert.Equal(t, base.Add(time.Hour), res.Session.UpdatedAt)
}

func TestStore_AttachProductSessionNotFound(t *testing.T) {
	st, _ := newTestStore(t)

	res, err := st.AttachProduct("missing", "1")
	require.NoError(t, err)
	assert.True(t, res.SessionNotFound)
	assert.False(t, res.Success)
	assert.False(t, res.AlreadyExists)
}

func TestStore_AttachProductEmptyID(t *testing.T) {
	st, _ := newTestStore(t)
	_, err := st.AttachProduct("custom-1", "")
	assert.Error(t, err)
}

type failingPort struct {
	storage.Port
	failSave bool
}

func (f *failingPort) Save(key string, data []byte) error {
	if f.failSave {
		return assert.AnError
	}
	return f.Port.Save(key, data)
}

func TestStore_SaveAllSwallowsWriteFailure(t *testing.T) {
	port := &failingPort{Port: storage.NewMemStore(), failSave: true}
	st := NewStore(port, zerolog.Nop())

	// Must not panic or surface the error
	st.SaveAll([]Session{{ID: "custom-1"}})
	assert.Empty(t, st.LoadAll())
}
