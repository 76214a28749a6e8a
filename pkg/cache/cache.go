package cache

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTTL is how long a fetched result stays usable before the next read
// falls through to the network again.
const DefaultTTL = time.Hour

type entry struct {
	value   any
	expires time.Time
}

// Store is a process-wide TTL cache shared by all fetchers. Expiry is checked
// on read against the insertion deadline, so there is no background sweeper to
// manage. Writes are last-writer-wins per key.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:     ttl,
		entries: map[string]entry{},
		now:     time.Now,
	}
}

// Key builds the cache key for a (source kind, source id) pair.
func Key(kind, id string) string {
	return fmt.Sprintf("%s-%s", kind, id)
}

// Get returns the cached value for key if it has not expired. An expired
// entry is deleted on the way out.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if !s.now().Before(e.expires) {
		delete(s.entries, key)
		return nil, false
	}
	return e.value, true
}

func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, expires: s.now().Add(s.ttl)}
}

func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}
