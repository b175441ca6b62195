package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
)

// Product is a catalog listing, sellable per kilogram or per box.
type Product struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Category       enums.FishCategory `json:"category"`
	PricePerKg     decimal.Decimal    `json:"price_per_kg"`
	PricePerBox    decimal.Decimal    `json:"price_per_box"`
	StockKg        decimal.Decimal    `json:"stock_kg"`
	StockBoxes     int                `json:"stock_boxes"`
	ImageURL       string             `json:"image_url"`
	ExpirationDate time.Time          `json:"expiration_date"`
	Description    string             `json:"description"`
}

// PriceFor returns the unit price for the given selling unit.
func (p Product) PriceFor(unit enums.CartUnit) decimal.Decimal {
	if unit == enums.CartUnitBox {
		return p.PricePerBox
	}
	return p.PricePerKg
}
