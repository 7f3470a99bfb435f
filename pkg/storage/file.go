package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// FileStore persists each slot as a single file under a base directory.
type FileStore struct {
	baseDir string
	mu      sync.RWMutex
}

// NewFileStore creates a FileStore rooted at baseDir, creating the directory
// if needed.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("base directory cannot be empty")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// validateKey rejects keys that could escape the base directory.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("slot key cannot be empty")
	}
	if strings.Contains(key, "..") {
		return fmt.Errorf("slot key cannot contain '..'")
	}
	if strings.ContainsAny(key, "/\\") {
		return fmt.Errorf("slot key cannot contain path separators")
	}
	if strings.Contains(key, "\x00") {
		return fmt.Errorf("slot key cannot contain null bytes")
	}
	return nil
}

func (fs *FileStore) slotPath(key string) string {
	return filepath.Join(fs.baseDir, key+".json")
}

// Load reads the slot file. A missing file is reported as not found.
func (fs *FileStore) Load(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	data, err := os.ReadFile(fs.slotPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return data, true, nil
}

// Save writes the slot atomically using a temp file and rename.
func (fs *FileStore) Save(key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	path := fs.slotPath(key)
	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	log.Debug().
		Str("slot", key).
		Int("bytes", len(data)).
		Msg("Slot saved to disk")

	return nil
}
