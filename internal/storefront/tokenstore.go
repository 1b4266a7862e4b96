package storefront

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persists the bearer credential across process restarts. A single
// well-known location holds at most one token; clearing it signs the session
// out everywhere.
type TokenStore interface {
	Load() string
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a file under the user's home directory.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore() (*FileTokenStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &FileTokenStore{path: filepath.Join(home, ".cafe-storefront", "token")}, nil
}

func (s *FileTokenStore) Load() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryTokenStore holds the token for the lifetime of the process.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryTokenStore) Load() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
