package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peircelab/peirce/pkg/errors"
)

// FileStore persists each session as a JSON file named <id>.json under a
// directory. Session IDs are UUIDs, so they are safe as file names.
type FileStore struct {
	dir string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates (if needed) the directory and returns a store over it.
// If dir is empty, it defaults to ~/.config/peirce/sessions.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to resolve home directory")
		}
		dir = filepath.Join(home, ".config", "peirce", "sessions")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to create session directory")
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory sessions are stored under.
func (f *FileStore) Dir() string { return f.dir }

func (f *FileStore) path(id string) string {
	return filepath.Join(f.dir, id+".json")
}

// Get implements Store.
func (f *FileStore) Get(_ context.Context, id string) (*Session, error) {
	data, err := os.ReadFile(f.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeSessionNotFound, "session not found: %s", id)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to read session file")
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to decode session file")
	}
	return &s, nil
}

// Put implements Store.
func (f *FileStore) Put(_ context.Context, s *Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to encode session")
	}
	if err := os.WriteFile(f.path(s.ID), data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write session file")
	}
	return nil
}

// Delete implements Store.
func (f *FileStore) Delete(_ context.Context, id string) error {
	if err := os.Remove(f.path(id)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to delete session file")
	}
	return nil
}

// List implements Store. Unreadable or malformed files are skipped.
func (f *FileStore) List(ctx context.Context) ([]*Session, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to read session directory")
	}

	var out []*Session
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		s, err := f.Get(ctx, strings.TrimSuffix(e.Name(), ".json"))
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Close implements Store.
func (f *FileStore) Close(context.Context) error { return nil }
