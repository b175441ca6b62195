package customers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JRGCaponde/peixaria-backend/internal/store"
	"github.com/JRGCaponde/peixaria-backend/pkg/config"
	pkgerrors "github.com/JRGCaponde/peixaria-backend/pkg/errors"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
	"github.com/JRGCaponde/peixaria-backend/pkg/security"
)

// CreateRequest adds a customer from the CRM page.
type CreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// Service is the CRM surface.
type Service interface {
	List(ctx context.Context) []models.Customer
	Create(ctx context.Context, req CreateRequest) (*models.Customer, error)
}

type service struct {
	store       *store.Store
	passwordCfg config.PasswordConfig
}

// NewService wires CRM dependencies.
func NewService(st *store.Store, passwordCfg config.PasswordConfig) (Service, error) {
	if st == nil {
		return nil, fmt.Errorf("state store is required")
	}
	return &service{store: st, passwordCfg: passwordCfg}, nil
}

func (s *service) List(ctx context.Context) []models.Customer {
	return s.store.Customers()
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*models.Customer, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	if _, exists := s.store.FindCustomerByEmail(email); exists {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	}

	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	customer := models.Customer{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Phone:        req.Phone,
		JoinDate:     time.Now(),
	}
	s.store.AddCustomer(customer)

	return &customer, nil
}
