package store

import (
	"github.com/google/uuid"

	"github.com/JRGCaponde/peixaria-backend/pkg/models"
)

// AddEmployee appends the employee to the roster.
func (s *Store) AddEmployee(employee models.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = append(s.employees, employee)
}

// UpdateEmployee replaces the employee matching by id in place.
func (s *Store) UpdateEmployee(employee models.Employee) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID == employee.ID {
			s.employees[i] = employee
			return true
		}
	}
	return false
}

// RemoveEmployee filters the employee out of the roster.
func (s *Store) RemoveEmployee(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.employees[:0]
	removed := false
	for _, employee := range s.employees {
		if employee.ID == id {
			removed = true
			continue
		}
		kept = append(kept, employee)
	}
	s.employees = kept
	return removed
}

// Employees returns a copy of the roster.
func (s *Store) Employees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// FindEmployee returns the employee with the given id.
func (s *Store) FindEmployee(id uuid.UUID) (models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, employee := range s.employees {
		if employee.ID == id {
			return employee, true
		}
	}
	return models.Employee{}, false
}

// FindEmployeeByEmail returns the first employee with the given email.
func (s *Store) FindEmployeeByEmail(email string) (models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, employee := range s.employees {
		if employee.Email == email {
			return employee, true
		}
	}
	return models.Employee{}, false
}
