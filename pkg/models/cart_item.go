package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
)

// CartItem is one cart line. Its identity is the (ProductID, Unit) pair:
// adding the same pair again merges into the existing line.
type CartItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      enums.CartUnit  `json:"unit"`
	Price     decimal.Decimal `json:"price"`
}

// SameLine reports whether two items share the cart line identity.
func (c CartItem) SameLine(productID uuid.UUID, unit enums.CartUnit) bool {
	return c.ProductID == productID && c.Unit == unit
}

// LineTotal is price multiplied by quantity.
func (c CartItem) LineTotal() decimal.Decimal {
	return c.Price.Mul(c.Quantity)
}
