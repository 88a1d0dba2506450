package rutgen

import (
	"context"
	"sync"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

// Store records which RUTs have been issued.
type Store interface {
	// Reserve marks r as issued. It reports false if r was already reserved.
	Reserve(ctx context.Context, r rut.RUT) (bool, error)
	// Release forgets a reservation made by Reserve.
	Release(ctx context.Context, r rut.RUT) error
	// Reset forgets every reservation.
	Reset(ctx context.Context) error
}

// MemoryStore is an in-process Store. It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.Mutex
	used map[uint32]struct{}
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{used: make(map[uint32]struct{})}
}

func (s *MemoryStore) Reserve(_ context.Context, r rut.RUT) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.used[r.Body()]; ok {
		return false, nil
	}
	s.used[r.Body()] = struct{}{}
	return true, nil
}

func (s *MemoryStore) Release(_ context.Context, r rut.RUT) error {
	s.mu.Lock()
	delete(s.used, r.Body())
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Reset(context.Context) error {
	s.mu.Lock()
	s.used = make(map[uint32]struct{})
	s.mu.Unlock()
	return nil
}

// Len returns the number of reservations held.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.used)
}
