package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/maisondecafe/kiosk-bot/internal/locale"
)

const stateFileMode = 0o600

// stateFile is the on-disk document. Lead progress is deliberately not
// persisted; a half-finished form does not survive a restart.
type stateFile struct {
	Blocked  []int64            `json:"blocked"`
	Sessions map[int64]*Session `json:"sessions"`
}

// FileStore wraps MemoryStore and rewrites a JSON state file wholesale on
// every mutation. Writes are serialized; last writer wins.
type FileStore struct {
	*MemoryStore

	path    string
	writeMu sync.Mutex
}

// NewFileStore loads the state file at path. A missing file is empty state,
// not an error.
func NewFileStore(path string, defaultLang locale.Language) (*FileStore, error) {
	fs := &FileStore{
		MemoryStore: NewMemoryStore(defaultLang),
		path:        path,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}

		return nil, fmt.Errorf("read state file: %w", err)
	}

	var state stateFile
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", path, err)
	}

	fs.restore(state.Sessions, state.Blocked)

	return fs, nil
}

func (f *FileStore) Put(ctx context.Context, s *Session) error {
	if err := f.MemoryStore.Put(ctx, s); err != nil {
		return err
	}

	return f.flush()
}

func (f *FileStore) Block(ctx context.Context, userID int64) error {
	if err := f.MemoryStore.Block(ctx, userID); err != nil {
		return err
	}

	return f.flush()
}

func (f *FileStore) Unblock(ctx context.Context, userID int64) error {
	if err := f.MemoryStore.Unblock(ctx, userID); err != nil {
		return err
	}

	return f.flush()
}

func (f *FileStore) flush() error {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	sessions, blocked := f.snapshot()
	sort.Slice(blocked, func(i, j int) bool { return blocked[i] < blocked[j] })

	raw, err := json.MarshalIndent(stateFile{Blocked: blocked, Sessions: sessions}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.WriteFile(f.path, raw, stateFileMode); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}
