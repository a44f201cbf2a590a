package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds in-progress booking flows in memory. Flows are never
// persisted; deleting a flow is the explicit reset that discards the
// selection entirely.
type Store struct {
	commitLatency time.Duration

	mu    sync.RWMutex
	flows map[string]*Flow
}

// NewStore creates an empty flow store. commitLatency is applied to every
// flow's simulated commit.
func NewStore(commitLatency time.Duration) *Store {
	return &Store{
		commitLatency: commitLatency,
		flows:         make(map[string]*Flow),
	}
}

// Create starts a new flow in the services step.
func (s *Store) Create(ctx context.Context) (*Flow, error) {
	flow := newFlow(uuid.NewString(), s.commitLatency)
	s.mu.Lock()
	s.flows[flow.ID()] = flow
	s.mu.Unlock()
	return flow, nil
}

// Get returns the flow with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*Flow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	flow, ok := s.flows[id]
	if !ok {
		return nil, ErrFlowNotFound
	}
	return flow, nil
}

// Delete discards the flow and its selection.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flows[id]; !ok {
		return ErrFlowNotFound
	}
	delete(s.flows, id)
	return nil
}
