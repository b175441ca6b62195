package store

import (
	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
	"github.com/JRGCaponde/peixaria-backend/pkg/security"
)

// Session is the active identity, modeled as a tagged union so that exactly
// one of admin, staff or customer can be signed in at a time. A successful
// login replaces whatever identity was active before.
type Session struct {
	Kind       enums.ActorKind  `json:"kind"`
	AdminEmail string           `json:"admin_email,omitempty"`
	Staff      *models.Employee `json:"staff,omitempty"`
	Customer   *models.Customer `json:"customer,omitempty"`
}

func anonymousSession() Session {
	return Session{Kind: enums.ActorKindAnonymous}
}

// Session returns a copy of the active identity.
func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess := s.session
	if sess.Staff != nil {
		staff := *sess.Staff
		sess.Staff = &staff
	}
	if sess.Customer != nil {
		cust := *sess.Customer
		sess.Customer = &cust
	}
	return sess
}

// LoginAdmin succeeds only against the bootstrap credential pair. No
// lockout, no rate limiting; the verdict is the bare boolean.
func (s *Store) LoginAdmin(email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email != s.adminEmail {
		return false
	}
	if ok, err := security.VerifyPassword(password, s.adminPasswordHash); err != nil || !ok {
		return false
	}

	s.session = Session{Kind: enums.ActorKindAdmin, AdminEmail: email}
	return true
}

// LoginStaff succeeds when an employee record matches email and password.
func (s *Store) LoginStaff(email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].Email != email {
			continue
		}
		if ok, err := security.VerifyPassword(password, s.employees[i].PasswordHash); err == nil && ok {
			staff := s.employees[i]
			s.session = Session{Kind: enums.ActorKindStaff, Staff: &staff}
			return true
		}
	}
	return false
}

// LoginCustomer succeeds when a customer record matches email and password.
func (s *Store) LoginCustomer(email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].Email != email {
			continue
		}
		if ok, err := security.VerifyPassword(password, s.customers[i].PasswordHash); err == nil && ok {
			cust := s.customers[i]
			s.session = Session{Kind: enums.ActorKindCustomer, Customer: &cust}
			return true
		}
	}
	return false
}

// Logout resets to anonymous unconditionally, whichever identity was active.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = anonymousSession()
}
