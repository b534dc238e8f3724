package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/theoremus-urban-solutions/sftraintimes/model"
)

// FileStore keeps all users in one JSON document, rewritten on every change.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (s *FileStore) GetUser(_ context.Context, id string) (*model.UserHomeConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	u, ok := users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *FileStore) AddUser(_ context.Context, u model.UserHomeConfig) error {
	if u.ID == "" {
		return &model.InvalidInputError{Msg: "user id is required"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}
	users[u.ID] = u
	return s.save(users)
}

func (s *FileStore) UpdateUser(_ context.Context, id string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	if err := validateFields(fields); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}
	u, ok := users[id]
	if !ok {
		u = model.UserHomeConfig{ID: id}
	}
	if err := u.Apply(fields); err != nil {
		return err
	}
	users[id] = u
	return s.save(users)
}

func (s *FileStore) load() (map[string]model.UserHomeConfig, error) {
	users := map[string]model.UserHomeConfig{}
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return users, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read user file: %w", err)
	}
	if len(raw) == 0 {
		return users, nil
	}
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode user file %s: %w", s.path, err)
	}
	return users, nil
}

// save writes through a temp file so a crash never leaves a truncated document.
func (s *FileStore) save(users map[string]model.UserHomeConfig) error {
	raw, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".users-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
