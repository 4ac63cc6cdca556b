package wishlist

import (
	"context"
	"testing"

	"github.com/lateladelgol/storefront-backend/internal/snapshots"
)

func newTestService(t *testing.T, snaps snapshots.Store) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Snapshots: snaps})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestToggleAddsThenRemoves(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, snapshots.NewMemoryStore())
	entry := Entry{ID: "p1", Name: "Camiseta retro", Price: 39.90}

	added, entries, err := svc.Toggle(ctx, "c1", entry)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !added || len(entries) != 1 {
		t.Fatalf("expected entry added, got added=%v entries=%d", added, len(entries))
	}

	added, entries, err = svc.Toggle(ctx, "c1", entry)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if added || len(entries) != 0 {
		t.Fatalf("expected entry removed, got added=%v entries=%d", added, len(entries))
	}
}

func TestAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	snaps := snapshots.NewMemoryStore()
	store := NewStore(ctx, "c1", snaps, nil)

	store.Add(ctx, Entry{ID: "p1", Name: "Camiseta retro", Price: 39.90})
	entries := store.Add(ctx, Entry{ID: "p1", Name: "Nombre distinto", Price: 1})

	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	// The first snapshot wins; a duplicate add does not replace it.
	if entries[0].Name != "Camiseta retro" {
		t.Fatalf("expected original snapshot kept, got %q", entries[0].Name)
	}
}

func TestRemoveUnknownProductIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, snapshots.NewMemoryStore())

	if _, _, err := svc.Toggle(ctx, "c1", Entry{ID: "p1", Name: "Camiseta"}); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	entries, err := svc.Remove(ctx, "c1", "missing")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected untouched wishlist, got %d entries", len(entries))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	snaps := snapshots.NewMemoryStore()
	svc := newTestService(t, snaps)

	discount := 15.0
	if _, _, err := svc.Toggle(ctx, "c1", Entry{ID: "p1", Name: "Camiseta", Price: 39.90, Discount: &discount}); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	reloaded := newTestService(t, snaps)
	entries, err := reloaded.List(ctx, "c1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry after reload, got %d", len(entries))
	}
	if entries[0].Discount == nil || *entries[0].Discount != 15.0 {
		t.Fatalf("snapshot did not round-trip discount: %+v", entries[0])
	}
}

func TestContains(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, "c1", snapshots.NewMemoryStore(), nil)

	store.Add(ctx, Entry{ID: "p1", Name: "Camiseta"})
	if !store.Contains("p1") {
		t.Fatal("expected p1 on the wishlist")
	}
	if store.Contains("p2") {
		t.Fatal("did not expect p2 on the wishlist")
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, snapshots.NewMemoryStore())

	if _, _, err := svc.Toggle(ctx, "c1", Entry{ID: "p1", Name: "Camiseta"}); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := svc.Clear(ctx, "c1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	entries, err := svc.List(ctx, "c1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty wishlist, got %d entries", len(entries))
	}
}
