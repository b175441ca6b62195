package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JRGCaponde/peixaria-backend/pkg/models"
)

// AddItemRequest adds quantity of a product in one selling unit to the cart.
// Name and price come from the catalog, never from the client.
type AddItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" validate:"required"`
	Unit      string          `json:"unit" validate:"required,oneof=kg box"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

// View is the cart page payload.
type View struct {
	Items    []models.CartItem `json:"items"`
	Subtotal decimal.Decimal   `json:"subtotal"`
}

// Quote prices the cart against the current shop settings.
type Quote struct {
	Items         []models.CartItem `json:"items"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	DeliveryFee   decimal.Decimal   `json:"delivery_fee"`
	IVAAmount     decimal.Decimal   `json:"iva_amount"`
	Total         decimal.Decimal   `json:"total"`
	IsReservation bool              `json:"is_reservation"`
}
