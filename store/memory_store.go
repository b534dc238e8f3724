package store

import (
	"context"
	"sync"

	"github.com/theoremus-urban-solutions/sftraintimes/model"
)

// MemoryStore keeps users in a map.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]model.UserHomeConfig
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: map[string]model.UserHomeConfig{}}
}

func (s *MemoryStore) GetUser(_ context.Context, id string) (*model.UserHomeConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *MemoryStore) AddUser(_ context.Context, u model.UserHomeConfig) error {
	if u.ID == "" {
		return &model.InvalidInputError{Msg: "user id is required"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
	return nil
}

func (s *MemoryStore) UpdateUser(_ context.Context, id string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	if err := validateFields(fields); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		u = model.UserHomeConfig{ID: id}
	}
	if err := u.Apply(fields); err != nil {
		return err
	}
	s.users[id] = u
	return nil
}
