package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
)

// GuestCustomerID marks orders placed without a signed-in customer.
const GuestCustomerID = "guest"

// Order is an immutable snapshot of a checkout. Only Status and IsPaid
// change after placement; items and totals are frozen.
type Order struct {
	ID              string              `json:"id"`
	CustomerID      string              `json:"customer_id"`
	CustomerName    string              `json:"customer_name"`
	Items           []CartItem          `json:"items"`
	Total           decimal.Decimal     `json:"total"`
	Status          enums.OrderStatus   `json:"status"`
	PaymentMethod   enums.PaymentMethod `json:"payment_method"`
	DeliveryAddress string              `json:"delivery_address"`
	Landmark        string              `json:"landmark"`
	DeliverySlot    string              `json:"delivery_slot"`
	IsReservation   bool                `json:"is_reservation"`
	CreatedAt       time.Time           `json:"created_at"`
	IsPaid          bool                `json:"is_paid"`
}
