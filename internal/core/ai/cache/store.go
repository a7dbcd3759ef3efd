package cache

import (
	"sync"
	"time"

	"recipe-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

// Store is an in-process memoization store mapping request fingerprints
// to previously computed results. Expiry is checked lazily on Get and
// the stale entry is evicted on that read; there is no capacity bound
// and no background sweep. A ttl of zero disables expiry entirely
// (the translation store relies on this).
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
	stats   stats
}

type entry struct {
	data      any
	timestamp time.Time
}

type stats struct {
	hits      int64
	misses    int64
	evictions int64
}

// New creates a store with the given TTL using the wall clock.
func New(ttl time.Duration) *Store {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock creates a store with an injected clock. Tests pass a
// fake clock to exercise expiry deterministically.
func NewWithClock(ttl time.Duration, now func() time.Time) *Store {
	return &Store{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry),
	}
}

// Get returns the cached value for key. An entry older than the TTL is
// treated as absent and deleted on this read.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		s.mu.Lock()
		s.stats.misses++
		s.mu.Unlock()
		return nil, false
	}

	if s.ttl > 0 && s.now().Sub(e.timestamp) > s.ttl {
		s.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have
		// refreshed the entry.
		if cur, ok := s.entries[key]; ok && s.now().Sub(cur.timestamp) > s.ttl {
			delete(s.entries, key)
			s.stats.evictions++
		}
		s.stats.misses++
		s.mu.Unlock()
		common.LogDebug("cache entry expired", zap.String("key", key))
		return nil, false
	}

	s.mu.Lock()
	s.stats.hits++
	s.mu.Unlock()
	return e.data, true
}

// Set stores value under key, stamping it with the current time.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		data:      value,
		timestamp: s.now(),
	}
}

// Len returns the number of live entries, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Contains reports whether key is physically present, without touching
// expiry or stats.
func (s *Store) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[key]
	return ok
}

// GetStats returns hit/miss/eviction counters.
func (s *Store) GetStats() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]int64{
		"hits":      s.stats.hits,
		"misses":    s.stats.misses,
		"evictions": s.stats.evictions,
		"size":      int64(len(s.entries)),
	}
}
