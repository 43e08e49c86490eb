package session

import (
	"context"
	"sync"
	"time"

	"github.com/saipranav2004/AI-product-analysis/internal/domain"
)

// storedRecord wraps a session record with its expiration time.
type storedRecord struct {
	record     domain.SessionRecord
	expiration time.Time
}

// MemoryStore is a thread-safe in-memory SessionRepository with TTL
// eviction. Writes to the same key are last-write-wins under one lock,
// so a read after a completed write always sees that write; different
// keys share nothing but the map itself.
type MemoryStore struct {
	data  map[string]storedRecord
	mutex sync.RWMutex
	ttl   time.Duration
}

// DefaultTTL bounds how long a captured image stays around when the
// session never finishes its flow.
const DefaultTTL = 30 * time.Minute

const cleanupInterval = 5 * time.Minute

// NewMemoryStore creates an in-memory session store. A non-positive ttl
// falls back to DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	store := &MemoryStore{
		data: make(map[string]storedRecord),
		ttl:  ttl,
	}

	// Sweep expired records in the background; sessions are otherwise
	// never cleaned up.
	go store.cleanupExpired()

	return store
}

// Get retrieves the session record for a key. Returns a copy so callers
// can mutate and re-Set it without racing other readers.
func (s *MemoryStore) Get(ctx context.Context, key string) (*domain.SessionRecord, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, exists := s.data[key]
	if !exists || time.Now().After(item.expiration) {
		return nil, domain.ErrMissingSession
	}

	record := item.record
	if item.record.CachedCategory != nil {
		category := *item.record.CachedCategory
		record.CachedCategory = &category
	}
	return &record, nil
}

// Set stores the record for a key, overwriting any prior record.
func (s *MemoryStore) Set(ctx context.Context, key string, record *domain.SessionRecord) error {
	if key == "" || record == nil {
		return domain.ErrInvalidInput
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[key] = storedRecord{
		record:     *record,
		expiration: time.Now().Add(s.ttl),
	}
	return nil
}

// Delete removes the record for a key.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, key)
	return nil
}

// cleanupExpired removes expired records periodically.
func (s *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, item := range s.data {
			if now.After(item.expiration) {
				delete(s.data, key)
			}
		}
		s.mutex.Unlock()
	}
}

// Size returns the current number of stored sessions (for monitoring).
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// Clear removes all stored sessions.
func (s *MemoryStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data = make(map[string]storedRecord)
}
