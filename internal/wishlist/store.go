package wishlist

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/lateladelgol/storefront-backend/internal/snapshots"
	"github.com/lateladelgol/storefront-backend/pkg/logger"
)

// Store holds the wishlist entries for a single client key. Entries
// form a set keyed by product id, kept in insertion order. Snapshot
// failures are swallowed; state continues in memory.
type Store struct {
	clientID string
	snaps    snapshots.Store
	logg     *logger.Logger

	mu      sync.Mutex
	entries []Entry
}

// NewStore builds a store for one client and loads its snapshot once.
func NewStore(ctx context.Context, clientID string, snaps snapshots.Store, logg *logger.Logger) *Store {
	s := &Store{clientID: clientID, snaps: snaps, logg: logg}

	raw, found, err := snaps.Load(ctx, snapshotKind, clientID)
	if err != nil {
		s.debug(ctx, "wishlist snapshot load failed", err)
		return s
	}
	if !found {
		return s
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.debug(ctx, "wishlist snapshot is not valid JSON", err)
		return s
	}
	s.entries = entries
	return s
}

// Entries returns a copy of the current entries in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyEntries()
}

// Contains reports whether the product is on the wishlist.
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(productID) >= 0
}

// Add puts the entry on the wishlist. Adding a product that is already
// present is a no-op; the stored snapshot is not replaced.
func (s *Store) Add(ctx context.Context, entry Entry) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(entry.ID) < 0 {
		s.entries = append(s.entries, entry)
		s.persist(ctx)
	}
	return s.copyEntries()
}

// Remove drops the product; removing an absent id is a no-op.
func (s *Store) Remove(ctx context.Context, productID string) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		s.persist(ctx)
	}
	return s.copyEntries()
}

// Toggle adds the entry when absent and removes it when present. The
// returned bool reports whether the product is on the list afterwards.
func (s *Store) Toggle(ctx context.Context, entry Entry) (bool, []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(entry.ID); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		s.persist(ctx)
		return false, s.copyEntries()
	}
	s.entries = append(s.entries, entry)
	s.persist(ctx)
	return true, s.copyEntries()
}

// Clear empties the wishlist.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.persist(ctx)
}

// persist writes the full entry list; failures are swallowed. Callers
// hold s.mu.
func (s *Store) persist(ctx context.Context) {
	entries := s.entries
	if entries == nil {
		entries = []Entry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		s.debug(ctx, "wishlist snapshot marshal failed", err)
		return
	}
	if err := s.snaps.Save(ctx, snapshotKind, s.clientID, raw); err != nil {
		s.debug(ctx, "wishlist snapshot save failed", err)
	}
}

func (s *Store) indexOf(productID string) int {
	for i := range s.entries {
		if s.entries[i].ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) copyEntries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) debug(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	s.logg.Debug(s.logg.WithClientID(ctx, s.clientID), msg+": "+err.Error())
}
