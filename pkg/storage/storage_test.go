package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadMissingSlot(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	data, found, err := fs.Load("customSessions")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	payload := []byte(`[{"id":"custom-1"}]`)
	require.NoError(t, fs.Save("customSessions", payload))

	data, found, err := fs.Load("customSessions")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload, data)
}

func TestFileStore_SaveReplacesContent(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Save("slot", []byte("first")))
	require.NoError(t, fs.Save("slot", []byte("second")))

	data, found, err := fs.Load("slot")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("second"), data)
}

func TestFileStore_ValidateKey(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name      string
		key       string
		shouldErr bool
	}{
		{"valid key", "currentUser", false},
		{"empty key", "", true},
		{"path traversal", "../etc/passwd", true},
		{"forward slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fs.Save(tt.key, []byte("x"))
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSQLiteStore_SaveThenLoad(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "marketlens.db")
	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer s.Close()

	_, found, err := s.Load("customSessions")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Save("customSessions", []byte("[]")))
	require.NoError(t, s.Save("customSessions", []byte(`[{"id":1}]`)))

	data, found, err := s.Load("customSessions")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[{"id":1}]`), data)
}

func TestMemStore_CopiesPayload(t *testing.T) {
	m := NewMemStore()

	payload := []byte("abc")
	require.NoError(t, m.Save("slot", payload))
	payload[0] = 'x'

	data, found, err := m.Load("slot")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("abc"), data)
}
