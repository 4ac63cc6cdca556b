package snapshots

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used in tests and when Redis is
// not reachable at startup.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, kind, clientID string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[kind+":"+clientID]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (s *MemoryStore) Save(_ context.Context, kind, clientID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw := make([]byte, len(data))
	copy(raw, data)
	s.data[kind+":"+clientID] = raw
	return nil
}
