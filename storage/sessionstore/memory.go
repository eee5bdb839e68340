package sessionstore

import (
	"context"
	"sync"

	"github.com/trezcool/educonnect/core/session"
)

// MemoryStore keeps the serialized session in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

var _ session.Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, usr session.User) error {
	data, err := encodeUser(usr)
	if err != nil {
		return err
	}
	s.SetRaw(data)
	return nil
}

func (s *MemoryStore) Load(_ context.Context) (session.User, error) {
	data := s.Raw()
	if data == nil {
		return session.User{}, session.ErrNoSession
	}
	return decodeUser(data)
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.SetRaw(nil)
	return nil
}

// Raw returns a copy of the stored bytes, nil when empty.
func (s *MemoryStore) Raw() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil
	}
	return append([]byte(nil), s.data...)
}

// SetRaw replaces the stored bytes as is.
func (s *MemoryStore) SetRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if data == nil {
		s.data = nil
		return
	}
	s.data = append([]byte(nil), data...)
}
