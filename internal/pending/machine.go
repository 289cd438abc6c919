package pending

import (
	"crypto/subtle"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const defaultMaxUsers = 10000

// Machine keeps one pending-action state per user. Entries expire after ttl
// so an abandoned confirmation does not linger forever.
type Machine struct {
	passkey string
	mu      sync.Mutex
	states  *expirable.LRU[string, State]
}

// New creates a Machine gated by passkey.
func New(passkey string, ttl time.Duration) *Machine {
	return &Machine{
		passkey: passkey,
		states:  expirable.NewLRU[string, State](defaultMaxUsers, nil, ttl),
	}
}

// Get returns the user's current state; Idle when none is held.
func (m *Machine) Get(userID string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.states.Get(userID)
	if !ok {
		return State{Kind: KindNone}
	}
	return st
}

// RequestNote moves the user to AwaitingNoteConfirm, superseding any earlier request.
func (m *Machine) RequestNote(userID, draft string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states.Add(userID, State{Kind: KindNote, Draft: draft})
}

// RequestDelete moves the user to AwaitingDeleteConfirm, superseding any earlier request.
func (m *Machine) RequestDelete(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states.Add(userID, State{Kind: KindDelete})
}

// Confirm checks passkey against the configured one. On a match the pending
// state is returned and cleared; on a mismatch it is left untouched.
func (m *Machine) Confirm(userID, passkey string) (State, Outcome) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.states.Get(userID)
	if !ok || st.Kind == KindNone {
		return State{Kind: KindNone}, OutcomeNothingPending
	}
	if !m.matches(passkey) {
		return st, OutcomeRejected
	}
	m.states.Remove(userID)
	return st, OutcomeConfirmed
}

func (m *Machine) matches(candidate string) bool {
	if m.passkey == "" {
		return false
	}
	candidate = strings.TrimSpace(candidate)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(m.passkey)) == 1
}
