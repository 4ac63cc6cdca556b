package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/lateladelgol/storefront-backend/internal/snapshots"
	"github.com/lateladelgol/storefront-backend/pkg/logger"
)

// Store holds the cart lines for a single client key. State lives in
// memory; every mutation writes the full line list to the snapshot
// store. Snapshot failures are swallowed so the cart keeps working
// in memory.
type Store struct {
	clientID string
	snaps    snapshots.Store
	logg     *logger.Logger

	mu    sync.Mutex
	lines []Line
}

// NewStore builds a store for one client and loads its snapshot once.
// A missing or unreadable snapshot leaves the store empty.
func NewStore(ctx context.Context, clientID string, snaps snapshots.Store, logg *logger.Logger) *Store {
	s := &Store{clientID: clientID, snaps: snaps, logg: logg}

	raw, found, err := snaps.Load(ctx, snapshotKind, clientID)
	if err != nil {
		s.debug(ctx, "cart snapshot load failed", err)
		return s
	}
	if !found {
		return s
	}
	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		s.debug(ctx, "cart snapshot is not valid JSON", err)
		return s
	}
	s.lines = lines
	return s
}

// Lines returns a copy of the current lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLines()
}

// Total recomputes the cart total from the current lines.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TotalOf(s.lines)
}

// Add merges the line into the cart: an existing line with the same id
// gains the incoming quantity and keeps its other fields; otherwise the
// line is appended.
func (s *Store) Add(ctx context.Context, line Line) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	if line.Quantity < 1 {
		line.Quantity = 1
	}
	merged := false
	for i := range s.lines {
		if s.lines[i].ID == line.ID {
			s.lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, line)
	}
	s.persist(ctx)
	return s.copyLines()
}

// UpdateQuantity sets the quantity on the matching line. Unknown ids
// are a no-op. Callers clamp the value before calling.
func (s *Store) UpdateQuantity(ctx context.Context, lineID string, quantity int) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines[i].Quantity = quantity
			s.persist(ctx)
			break
		}
	}
	return s.copyLines()
}

// Remove drops the matching line; removing an absent id is a no-op.
func (s *Store) Remove(ctx context.Context, lineID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist(ctx)
			break
		}
	}
	return s.copyLines()
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist(ctx)
}

// persist writes the full line list under the fixed snapshot key.
// Failures are logged and swallowed. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	lines := s.lines
	if lines == nil {
		lines = []Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		s.debug(ctx, "cart snapshot marshal failed", err)
		return
	}
	if err := s.snaps.Save(ctx, snapshotKind, s.clientID, raw); err != nil {
		s.debug(ctx, "cart snapshot save failed", err)
	}
}

func (s *Store) copyLines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) debug(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	s.logg.Debug(s.logg.WithClientID(ctx, s.clientID), msg+": "+err.Error())
}
