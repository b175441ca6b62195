package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is a storefront account. The password never leaves the process:
// only the argon2id hash is held, and it is excluded from JSON.
type Customer struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Phone        string          `json:"phone"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	JoinDate     time.Time       `json:"join_date"`
}
