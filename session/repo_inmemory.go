package session

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryRepo is an in-memory implementation of Repo. All sessions are lost
// when the process restarts, so it is only suitable for development and
// single-instance deployments.
type InMemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]State
}

// NewInMemoryRepo creates a new in-memory session repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		sessions: make(map[string]State),
	}
}

var _ Repo = (*InMemoryRepo)(nil)

// Get retrieves the state for a session ID, zero State when unknown
func (r *InMemoryRepo) Get(_ context.Context, sessionID string) (State, error) {
	if sessionID == "" {
		return State{}, fmt.Errorf("sessionID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sessions[sessionID], nil
}

// Upsert creates or replaces the state for a session ID
func (r *InMemoryRepo) Upsert(_ context.Context, sessionID string, state State) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = state
	return nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (r *InMemoryRepo) Delete(_ context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}
