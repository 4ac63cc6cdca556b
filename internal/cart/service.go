package cart

import (
	"context"
	"strings"
	"sync"

	"github.com/lateladelgol/storefront-backend/internal/snapshots"
	pkgerrors "github.com/lateladelgol/storefront-backend/pkg/errors"
	"github.com/lateladelgol/storefront-backend/pkg/logger"
)

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Snapshots snapshots.Store
	Logger    *logger.Logger
}

// Service exposes the cart operations keyed by client id. Each client
// gets its own Store, created on first touch and kept for the life of
// the process.
type Service interface {
	View(ctx context.Context, clientID string) (View, error)
	AddLine(ctx context.Context, clientID string, line Line) (View, error)
	UpdateQuantity(ctx context.Context, clientID, lineID string, quantity int) (View, error)
	RemoveLine(ctx context.Context, clientID, lineID string) (View, error)
	Clear(ctx context.Context, clientID string) (View, error)
}

type service struct {
	snaps snapshots.Store
	logg  *logger.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Snapshots == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "snapshot store is required")
	}
	return &service{
		snaps:  params.Snapshots,
		logg:   params.Logger,
		stores: make(map[string]*Store),
	}, nil
}

// View returns the current cart for the client.
func (s *service) View(ctx context.Context, clientID string) (View, error) {
	store, err := s.storeFor(ctx, clientID)
	if err != nil {
		return View{}, err
	}
	return viewOf(store), nil
}

// AddLine merges a line into the cart and returns the updated view.
func (s *service) AddLine(ctx context.Context, clientID string, line Line) (View, error) {
	store, err := s.storeFor(ctx, clientID)
	if err != nil {
		return View{}, err
	}
	if strings.TrimSpace(line.ID) == "" {
		return View{}, pkgerrors.New(pkgerrors.CodeValidation, "line id is required")
	}
	if strings.TrimSpace(line.Name) == "" {
		return View{}, pkgerrors.New(pkgerrors.CodeValidation, "line name is required")
	}
	if line.UnitPrice < 0 {
		return View{}, pkgerrors.New(pkgerrors.CodeValidation, "unit price cannot be negative")
	}
	lines := store.Add(ctx, line)
	return View{Lines: lines, Total: TotalOf(lines)}, nil
}

// UpdateQuantity sets the quantity on an existing line. The HTTP layer
// clamps the value to its allowed range before calling.
func (s *service) UpdateQuantity(ctx context.Context, clientID, lineID string, quantity int) (View, error) {
	store, err := s.storeFor(ctx, clientID)
	if err != nil {
		return View{}, err
	}
	if strings.TrimSpace(lineID) == "" {
		return View{}, pkgerrors.New(pkgerrors.CodeValidation, "line id is required")
	}
	lines := store.UpdateQuantity(ctx, lineID, quantity)
	return View{Lines: lines, Total: TotalOf(lines)}, nil
}

// RemoveLine drops a line; unknown ids are a no-op.
func (s *service) RemoveLine(ctx context.Context, clientID, lineID string) (View, error) {
	store, err := s.storeFor(ctx, clientID)
	if err != nil {
		return View{}, err
	}
	lines := store.Remove(ctx, lineID)
	return View{Lines: lines, Total: TotalOf(lines)}, nil
}

// Clear empties the client's cart.
func (s *service) Clear(ctx context.Context, clientID string) (View, error) {
	store, err := s.storeFor(ctx, clientID)
	if err != nil {
		return View{}, err
	}
	store.Clear(ctx)
	return View{Lines: []Line{}, Total: 0}, nil
}

func (s *service) storeFor(ctx context.Context, clientID string) (*Store, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if store, ok := s.stores[clientID]; ok {
		return store, nil
	}
	store := NewStore(ctx, clientID, s.snaps, s.logg)
	s.stores[clientID] = store
	return store, nil
}

func viewOf(store *Store) View {
	lines := store.Lines()
	return View{Lines: lines, Total: TotalOf(lines)}
}
