package services

import (
	"sync"
)

// SessionManager hands out one PlanStore per authenticated user, created on
// first use and torn down on logout. This replaces the context-lookup
// provider of the mobile app with an explicit, injectable registry.
type SessionManager struct {
	mu       sync.Mutex
	remote   RemotePlanService
	store    OverrideStore
	hub      *SyncHub
	sessions map[string]*PlanStore
}

func NewSessionManager(remote RemotePlanService, store OverrideStore, hub *SyncHub) *SessionManager {
	return &SessionManager{
		remote:   remote,
		store:    store,
		hub:      hub,
		sessions: make(map[string]*PlanStore),
	}
}

// Store returns the user's plan store, creating it on demand.
func (m *SessionManager) Store(userID string) *PlanStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	ps, ok := m.sessions[userID]
	if !ok {
		ps = NewPlanStore(userID, m.remote, m.store, m.hub)
		m.sessions[userID] = ps
	}
	return ps
}

// Close drops the user's session; the next request starts from a fresh store.
func (m *SessionManager) Close(userID string) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
}
