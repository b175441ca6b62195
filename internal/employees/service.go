package employees

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JRGCaponde/peixaria-backend/internal/store"
	"github.com/JRGCaponde/peixaria-backend/pkg/config"
	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
	pkgerrors "github.com/JRGCaponde/peixaria-backend/pkg/errors"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
	"github.com/JRGCaponde/peixaria-backend/pkg/security"
)

// UpsertRequest carries roster fields for create and update. On update an
// empty password keeps the current one.
type UpsertRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
	Role     string `json:"role" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Status   string `json:"status" validate:"required"`
}

// Service is the staff roster surface.
type Service interface {
	List(ctx context.Context) []models.Employee
	Create(ctx context.Context, req UpsertRequest) (*models.Employee, error)
	Update(ctx context.Context, id uuid.UUID, req UpsertRequest) (*models.Employee, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type service struct {
	store       *store.Store
	passwordCfg config.PasswordConfig
}

// NewService wires roster dependencies.
func NewService(st *store.Store, passwordCfg config.PasswordConfig) (Service, error) {
	if st == nil {
		return nil, fmt.Errorf("state store is required")
	}
	return &service{store: st, passwordCfg: passwordCfg}, nil
}

func (s *service) List(ctx context.Context) []models.Employee {
	return s.store.Employees()
}

func (s *service) Create(ctx context.Context, req UpsertRequest) (*models.Employee, error) {
	if req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password required")
	}
	role, status, err := parseRoleAndStatus(req)
	if err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	employee := models.Employee{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Phone:        req.Phone,
		Status:       status,
		HireDate:     time.Now(),
	}
	s.store.AddEmployee(employee)

	return &employee, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpsertRequest) (*models.Employee, error) {
	current, ok := s.store.FindEmployee(id)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "employee not found")
	}
	role, status, err := parseRoleAndStatus(req)
	if err != nil {
		return nil, err
	}

	hash := current.PasswordHash
	if req.Password != "" {
		hash, err = security.HashPassword(req.Password, s.passwordCfg)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
		}
	}

	employee := models.Employee{
		ID:           id,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Phone:        req.Phone,
		Status:       status,
		HireDate:     current.HireDate,
	}
	if !s.store.UpdateEmployee(employee) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "employee not found")
	}

	return &employee, nil
}

func (s *service) Remove(ctx context.Context, id uuid.UUID) error {
	if !s.store.RemoveEmployee(id) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "employee not found")
	}
	return nil
}

func parseRoleAndStatus(req UpsertRequest) (enums.EmployeeRole, enums.EmployeeStatus, error) {
	role, err := enums.ParseEmployeeRole(req.Role)
	if err != nil {
		return "", "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role")
	}
	status, err := enums.ParseEmployeeStatus(req.Status)
	if err != nil {
		return "", "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
	}
	return role, status, nil
}
