package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/JRGCaponde/peixaria-backend/internal/store"
	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
	pkgerrors "github.com/JRGCaponde/peixaria-backend/pkg/errors"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
)

// Service exposes the catalog to the storefront grid and the inventory page.
type Service interface {
	List(ctx context.Context, category string) ([]models.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, req ProductRequest) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, req ProductRequest) (*models.Product, error)
}

type service struct {
	store *store.Store
}

// NewService wires catalog dependencies.
func NewService(st *store.Store) (Service, error) {
	if st == nil {
		return nil, fmt.Errorf("state store is required")
	}
	return &service{store: st}, nil
}

func (s *service) List(ctx context.Context, category string) ([]models.Product, error) {
	products := s.store.Products()
	if category == "" {
		return products, nil
	}

	parsed, err := enums.ParseFishCategory(category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category filter")
	}

	filtered := make([]models.Product, 0, len(products))
	for _, product := range products {
		if product.Category == parsed {
			filtered = append(filtered, product)
		}
	}
	return filtered, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, ok := s.store.FindProduct(id)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return &product, nil
}

func (s *service) Create(ctx context.Context, req ProductRequest) (*models.Product, error) {
	product, err := productFromRequest(uuid.New(), req)
	if err != nil {
		return nil, err
	}
	s.store.AddProduct(*product)
	return product, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req ProductRequest) (*models.Product, error) {
	product, err := productFromRequest(id, req)
	if err != nil {
		return nil, err
	}
	if !s.store.UpdateProduct(*product) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func productFromRequest(id uuid.UUID, req ProductRequest) (*models.Product, error) {
	category, err := enums.ParseFishCategory(req.Category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}

	return &models.Product{
		ID:             id,
		Name:           req.Name,
		Category:       category,
		PricePerKg:     req.PricePerKg,
		PricePerBox:    req.PricePerBox,
		StockKg:        req.StockKg,
		StockBoxes:     req.StockBoxes,
		ImageURL:       req.ImageURL,
		ExpirationDate: req.ExpirationDate,
		Description:    req.Description,
	}, nil
}
