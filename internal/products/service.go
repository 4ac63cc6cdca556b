package products

import (
	"context"

	"github.com/lateladelgol/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lateladelgol/storefront-backend/pkg/errors"
)

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	ProductRepo *Repository
}

// Service exposes the storefront catalog read path.
type Service interface {
	List(ctx context.Context) ([]models.Product, error)
}

type service struct {
	productRepo *Repository
}

// NewService builds a catalog service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.ProductRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product repo is required")
	}
	return &service{productRepo: params.ProductRepo}, nil
}

// List returns every product in the catalog. The set is small enough
// that pagination is not worth its complexity here.
func (s *service) List(ctx context.Context) ([]models.Product, error) {
	records, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return records, nil
}
