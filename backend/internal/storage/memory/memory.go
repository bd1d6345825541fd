// Package memory is an in-process user store for development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/itchan-dev/signup/shared/domain"
)

type Storage struct {
	mu    sync.RWMutex
	users map[domain.Email]domain.User
}

func New() *Storage {
	return &Storage{users: make(map[domain.Email]domain.User)}
}

// SaveUser inserts user unless its email is already present.
func (s *Storage) SaveUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return domain.ErrEmailTaken
	}
	s.users[user.Email] = user
	return nil
}

func (s *Storage) Cleanup() error {
	return nil
}
