package wishlist

import (
	"context"
	"strings"
	"sync"

	"github.com/lateladelgol/storefront-backend/internal/snapshots"
	pkgerrors "github.com/lateladelgol/storefront-backend/pkg/errors"
	"github.com/lateladelgol/storefront-backend/pkg/logger"
)

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	Snapshots snapshots.Store
	Logger    *logger.Logger
}

// Service exposes wishlist operations keyed by client id.
type Service interface {
	List(ctx context.Context, clientID string) ([]Entry, error)
	Toggle(ctx context.Context, clientID string, entry Entry) (bool, []Entry, error)
	Remove(ctx context.Context, clientID, productID string) ([]Entry, error)
	Clear(ctx context.Context, clientID string) error
}

type service struct {
	snaps snapshots.Store
	logg  *logger.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

// NewService builds a wishlist service with the required dependencies.
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

// List returns the client's wishlist in insertion order.
func (s *service) List(ctx context.Context, clientID string) ([]Entry, error) {
	store, err := s.storeFor(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return store.Entries(), nil
}

// Toggle flips membership for the product and reports the new state.
func (s *service) Toggle(ctx context.Context, clientID string, entry Entry) (bool, []Entry, error) {
	store, err := s.storeFor(ctx, clientID)
	if err != nil {
		return false, nil, err
	}
	if strings.TrimSpace(entry.ID) == "" {
		return false, nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	added, entries := store.Toggle(ctx, entry)
	return added, entries, nil
}

// Remove drops the product regardless of prior state.
func (s *service) Remove(ctx context.Context, clientID, productID string) ([]Entry, error) {
	store, err := s.storeFor(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return store.Remove(ctx, productID), nil
}

// Clear empties the client's wishlist.
func (s *service) Clear(ctx context.Context, clientID string) error {
	store, err := s.storeFor(ctx, clientID)
	if err != nil {
		return err
	}
	store.Clear(ctx)
	return nil
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
