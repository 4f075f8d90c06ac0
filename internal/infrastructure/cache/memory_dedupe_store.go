// Package cache holds the stores used to drop redelivered webhook events.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/andromeda/ordersync/internal/domain/shared"
)

const defaultSweepInterval = 5 * time.Minute

// MemoryDedupeStore keeps seen event keys in process memory.
// State is not shared between replicas.
type MemoryDedupeStore struct {
	mu        sync.Mutex
	expiries  map[string]time.Time
	now       func() time.Time
	stop      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewMemoryDedupeStore creates the store and starts its sweeper.
// A non-positive interval uses the default of five minutes.
func NewMemoryDedupeStore(sweepInterval time.Duration) *MemoryDedupeStore {
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}
	s := &MemoryDedupeStore{
		expiries: make(map[string]time.Time),
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	s.wg.Add(1)
	go s.sweepLoop(sweepInterval)
	return s
}

// MarkProcessed records key for ttl. Reports false if key is still live.
func (s *MemoryDedupeStore) MarkProcessed(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if expiry, ok := s.expiries[key]; ok && now.Before(expiry) {
		return false, nil
	}
	s.expiries[key] = now.Add(ttl)
	return true, nil
}

// IsProcessed reports whether key was recorded and has not expired
func (s *MemoryDedupeStore) IsProcessed(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.expiries[key]
	return ok && s.now().Before(expiry), nil
}

// Len returns the number of keys held, expired or not
func (s *MemoryDedupeStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.expiries)
}

// Close stops the sweeper. Safe to call more than once.
func (s *MemoryDedupeStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.wg.Wait()
	})
	return nil
}

func (s *MemoryDedupeStore) sweepLoop(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryDedupeStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, expiry := range s.expiries {
		if !now.Before(expiry) {
			delete(s.expiries, key)
		}
	}
}

var _ shared.IdempotencyStore = (*MemoryDedupeStore)(nil)
