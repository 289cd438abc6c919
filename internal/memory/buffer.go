package memory

import (
	"strings"
	"sync"
)

// Buffer is a bounded rolling window of recent messages for one user.
type Buffer struct {
	mu      sync.Mutex
	policy  Policy
	entries []Entry
}

// NewBuffer creates an empty Buffer governed by policy.
func NewBuffer(policy Policy) *Buffer {
	return &Buffer{policy: policy}
}

// Append adds e and evicts the oldest entries until the budget holds.
func (b *Buffer) Append(e Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, e)
	b.evictLocked()
}

// Snapshot returns a copy of the entries, oldest first.
func (b *Buffer) Snapshot() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// EvictUntilWithinBudget drops the oldest entries until the policy is
// satisfied and returns how many were removed. The newest entry is always kept.
func (b *Buffer) EvictUntilWithinBudget() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.evictLocked()
}

// UserText joins every user-authored entry, lowercased.
func (b *Buffer) UserText() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	parts := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		if e.Role == RoleUser {
			parts = append(parts, strings.ToLower(e.Content))
		}
	}
	return strings.Join(parts, " ")
}

func (b *Buffer) evictLocked() int {
	dropped := 0
	for len(b.entries) > 1 && !b.policy.Within(b.entries) {
		b.entries[0] = Entry{}
		b.entries = b.entries[1:]
		dropped++
	}
	return dropped
}
