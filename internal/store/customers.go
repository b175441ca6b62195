package store

import "github.com/JRGCaponde/peixaria-backend/pkg/models"

// AddCustomer appends the customer. Email uniqueness is the caller's
// concern; the store trusts well-formed input.
func (s *Store) AddCustomer(customer models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, customer)
}

// Customers returns a copy of the customer collection.
func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// FindCustomerByEmail returns the first customer with the given email.
func (s *Store) FindCustomerByEmail(email string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, customer := range s.customers {
		if customer.Email == email {
			return customer, true
		}
	}
	return models.Customer{}, false
}
