package consultant

import (
	"context"
	"sync"
	"time"
)

// Message is one turn in a consultation session. The sequence is
// append-only and insertion order is display order.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryStore persists session transcripts. Load returns an empty slice
// for sessions that have no history yet.
type HistoryStore interface {
	Load(ctx context.Context, sessionID string) ([]Message, error)
	Save(ctx context.Context, sessionID string, history []Message) error
}

// MemoryHistoryStore keeps transcripts in process memory. Used when Redis
// is not configured.
type MemoryHistoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]Message
}

// NewMemoryHistoryStore creates an empty in-memory history store.
func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{sessions: make(map[string][]Message)}
}

// Load returns the stored transcript for the session.
func (s *MemoryHistoryStore) Load(ctx context.Context, sessionID string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := s.sessions[sessionID]
	out := make([]Message, len(history))
	copy(out, history)
	return out, nil
}

// Save replaces the stored transcript for the session.
func (s *MemoryHistoryStore) Save(ctx context.Context, sessionID string, history []Message) error {
	stored := make([]Message, len(history))
	copy(stored, history)
	s.mu.Lock()
	s.sessions[sessionID] = stored
	s.mu.Unlock()
	return nil
}
