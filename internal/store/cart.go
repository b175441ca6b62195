package store

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
)

// AddToCart merges the item into an existing line with the same
// (product, unit) identity, or appends it preserving insertion order.
func (s *Store) AddToCart(item models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].SameLine(item.ProductID, item.Unit) {
			s.cart[i].Quantity = s.cart[i].Quantity.Add(item.Quantity)
			return
		}
	}
	s.cart = append(s.cart, item)
}

// RemoveFromCart drops the line matching (productID, unit). Absent lines
// are a silent no-op.
func (s *Store) RemoveFromCart(productID uuid.UUID, unit enums.CartUnit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cart[:0]
	for _, item := range s.cart {
		if !item.SameLine(productID, unit) {
			kept = append(kept, item)
		}
	}
	s.cart = kept
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// Cart returns a copy of the cart lines in insertion order.
func (s *Store) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// CartTotal is the sum of price times quantity over the cart.
func (s *Store) CartTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartTotalLocked()
}

func (s *Store) cartTotalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.cart {
		total = total.Add(item.LineTotal())
	}
	return total
}
