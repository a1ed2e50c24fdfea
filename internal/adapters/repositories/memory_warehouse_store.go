package repositories

import (
	"context"
	"errors"
	"sync"
	"time"
	"warehouse-route-service/internal/domain"
)

type memorySession struct {
	warehouses []domain.Warehouse
	expiresAt  time.Time
}

// In-process implementation of the WarehouseStore port.
// Sessions expire ttl after their last add. Safe for concurrent use.
type MemoryWarehouseStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*memorySession
}

func NewMemoryWarehouseStore(ttl time.Duration) *MemoryWarehouseStore {
	return &MemoryWarehouseStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*memorySession),
	}
}

func (s *MemoryWarehouseStore) AddWarehouse(ctx context.Context, sessionID string, w domain.Warehouse) error {
	if err := checkAdd(sessionID, w); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.sessions[sessionID]
	if !ok || !now.Before(sess.expiresAt) {
		sess = &memorySession{}
		s.sessions[sessionID] = sess
	}

	sess.warehouses = append(sess.warehouses, w)
	sess.expiresAt = now.Add(s.ttl)
	return nil
}

// Return a copy of the session working set.
func (s *MemoryWarehouseStore) ListWarehouses(ctx context.Context, sessionID string) ([]domain.Warehouse, error) {
	if sessionID == "" {
		return nil, errors.New("list warehouses: session id must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return []domain.Warehouse{}, nil
	}

	if !s.now().Before(sess.expiresAt) {
		delete(s.sessions, sessionID)
		return []domain.Warehouse{}, nil
	}

	out := make([]domain.Warehouse, len(sess.warehouses))
	copy(out, sess.warehouses)
	return out, nil
}

func (s *MemoryWarehouseStore) ClearWarehouses(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.New("clear warehouses: session id must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

// Drop every expired session and return how many were removed.
func (s *MemoryWarehouseStore) PurgeExpired(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var n int64
	for id, sess := range s.sessions {
		if !now.Before(sess.expiresAt) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}
