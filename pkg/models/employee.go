package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
)

// Employee is a staff roster entry. One seeded Gerente acts as the
// bootstrap identity for the back office.
type Employee struct {
	ID           uuid.UUID            `json:"id"`
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	PasswordHash string               `json:"-"`
	Role         enums.EmployeeRole   `json:"role"`
	Phone        string               `json:"phone"`
	Status       enums.EmployeeStatus `json:"status"`
	HireDate     time.Time            `json:"hire_date"`
}
