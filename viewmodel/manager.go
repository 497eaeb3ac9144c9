package viewmodel

import (
	"sync"

	"github.com/zachary-salyers1/customer-management-app/store"
)

// Manager hands out one State per signed-in user so concurrent requests for
// the same user share a single writer.
type Manager struct {
	recordStore store.Store

	mu     sync.Mutex
	states map[string]*State
}

func NewManager(recordStore store.Store) *Manager {
	return &Manager{
		recordStore: recordStore,
		states:      make(map[string]*State),
	}
}

func (m *Manager) For(userID string) *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.states[userID]
	if !ok {
		state = NewState(m.recordStore, userID)
		m.states[userID] = state
	}
	return state
}

// Drop discards a user's cached state, e.g. on sign-out.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, userID)
}
