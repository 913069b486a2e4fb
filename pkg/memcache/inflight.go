// pkg/mem/inflight.go
package mem

import (
	"sync"
	"time"
)

// SubmissionGuard keeps at most one submission per key in flight, the server
// analog of a disabled submit button. Keys are "<profileID>:<flow>".
type SubmissionGuard interface {
	// Begin claims the key for one submission. Returns false if a live
	// submission already holds it.
	Begin(key string, ttl time.Duration) bool

	// Release frees the key. Safe to call on a key that was never claimed.
	Release(key string)
}

type entry struct {
	expiresAt time.Time
}

type InflightSubmissions struct {
	mu   sync.Mutex
	data map[string]entry
}

func NewInflightSubmissions() *InflightSubmissions {
	return &InflightSubmissions{
		data: make(map[string]entry),
	}
}

func (s *InflightSubmissions) Begin(key string, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if ok && time.Now().Before(e.expiresAt) {
		return false
	}
	// TTL backstops a request that never settles
	s.data[key] = entry{expiresAt: time.Now().Add(ttl)}
	return true
}

func (s *InflightSubmissions) Release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
