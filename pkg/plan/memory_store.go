package plan

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests and local development.
// All methods copy plan values on the way in and out, so callers can never
// mutate stored state through a retained pointer.
type MemoryStore struct {
	mu    sync.RWMutex
	plans map[string]Plan
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{plans: make(map[string]Plan)}
}

func (s *MemoryStore) Insert(ctx context.Context, p *Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.plans[p.ID] = *p
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, p *Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.plans[p.ID]; !exists {
		return ErrPlanNotFound
	}
	s.plans[p.ID] = *p
	return nil
}

func (s *MemoryStore) ListByUser(ctx context.Context, userID string) ([]Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Plan
	for _, p := range s.plans {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Count returns the total number of stored records across all users.
// Useful for asserting that dry-run operations performed no writes.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.plans)
}
