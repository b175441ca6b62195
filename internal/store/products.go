package store

import (
	"github.com/google/uuid"

	"github.com/JRGCaponde/peixaria-backend/pkg/models"
)

// AddProduct appends the product to the catalog.
func (s *Store) AddProduct(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, product)
}

// UpdateProduct replaces the product matching by id in place. Unknown ids
// are a no-op, reported through the boolean.
func (s *Store) UpdateProduct(product models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product
			return true
		}
	}
	return false
}

// Products returns a copy of the catalog in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// FindProduct returns the product with the given id.
func (s *Store) FindProduct(id uuid.UUID) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, product := range s.products {
		if product.ID == id {
			return product, true
		}
	}
	return models.Product{}, false
}
