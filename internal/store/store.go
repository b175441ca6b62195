// Package store holds all mutable domain state for the running process and
// is its sole owner: every collection is mutated through the methods here
// and nowhere else. State is process-local and lost on exit.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
	"github.com/google/uuid"
)

// Params configures the store at construction time. The bootstrap manager
// doubles as the hardcoded admin credential pair of the original shop.
type Params struct {
	AdminName         string
	AdminEmail        string
	AdminPasswordHash string
	AdminPhone        string
	Settings          models.ShopSettings
	Clock             func() time.Time
}

// Store is the central application state container. A single mutex keeps
// every operation atomic and total; there is no partial application.
type Store struct {
	mu sync.RWMutex

	now func() time.Time

	products      []models.Product
	orders        []models.Order
	customers     []models.Customer
	employees     []models.Employee
	cart          []models.CartItem
	notifications []models.Notification
	settings      models.ShopSettings

	session Session

	adminEmail        string
	adminPasswordHash string
}

// New builds a store seeded with the bootstrap manager account.
func New(params Params) (*Store, error) {
	if params.AdminEmail == "" {
		return nil, fmt.Errorf("admin email is required")
	}
	if params.AdminPasswordHash == "" {
		return nil, fmt.Errorf("admin password hash is required")
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}

	s := &Store{
		now:               clock,
		settings:          params.Settings,
		session:           anonymousSession(),
		adminEmail:        params.AdminEmail,
		adminPasswordHash: params.AdminPasswordHash,
	}

	s.employees = append(s.employees, models.Employee{
		ID:           uuid.New(),
		Name:         params.AdminName,
		Email:        params.AdminEmail,
		PasswordHash: params.AdminPasswordHash,
		Role:         enums.EmployeeRoleManager,
		Phone:        params.AdminPhone,
		Status:       enums.EmployeeStatusActive,
		HireDate:     clock(),
	})

	return s, nil
}
