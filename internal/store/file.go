package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps the snapshot in one pretty-printed JSON document. The
// document is the sole durable state; saves replace it wholesale via a
// temp-file rename so a crashed write never leaves a truncated file.
//
// The mutex only serializes file access within the process. Two
// overlapping load→modify→save cycles can still lose one of the writes.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a FileStore persisting to path, creating the
// parent directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

// Path returns the location of the backing document.
func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads and repairs the current snapshot. A missing document
// materializes as an empty snapshot; it is not written until the first
// save.
func (fs *FileStore) Load() (*Snapshot, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	raw, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading store document: %w", err)
	}

	snap := &Snapshot{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, snap); err != nil {
			return nil, fmt.Errorf("parsing store document: %w", err)
		}
	}
	snap.Normalize()

	return snap, nil
}

// Save persists the snapshot, replacing the whole document.
func (fs *FileStore) Save(snap *Snapshot) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store document: %w", err)
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("writing store document: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("replacing store document: %w", err)
	}

	return nil
}
