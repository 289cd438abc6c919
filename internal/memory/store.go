package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store hands out one Buffer per user. Buffers are created lazily, live only
// in process memory and are forgotten after ttl without activity or when
// more than maxUsers are held.
type Store struct {
	mu        sync.Mutex
	newPolicy func() Policy
	buffers   *expirable.LRU[string, *Buffer]
}

// NewStore creates a Store.
func NewStore(newPolicy func() Policy, maxUsers int, ttl time.Duration) *Store {
	return &Store{
		newPolicy: newPolicy,
		buffers:   expirable.NewLRU[string, *Buffer](maxUsers, nil, ttl),
	}
}

// Get returns the user's buffer, creating it on first use. Every call
// refreshes the idle timer.
func (s *Store) Get(userID string) *Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.buffers.Get(userID)
	if !ok {
		b = NewBuffer(s.newPolicy())
	}
	s.buffers.Add(userID, b)
	return b
}

// Len reports the number of buffers held.
func (s *Store) Len() int {
	return s.buffers.Len()
}
