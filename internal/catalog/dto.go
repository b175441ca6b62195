package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest is the payload for creating or replacing a product. Updates
// replace the record wholesale, so the same shape serves both.
type ProductRequest struct {
	Name           string          `json:"name" validate:"required"`
	Category       string          `json:"category" validate:"required"`
	PricePerKg     decimal.Decimal `json:"price_per_kg"`
	PricePerBox    decimal.Decimal `json:"price_per_box"`
	StockKg        decimal.Decimal `json:"stock_kg"`
	StockBoxes     int             `json:"stock_boxes"`
	ImageURL       string          `json:"image_url"`
	ExpirationDate time.Time       `json:"expiration_date"`
	Description    string          `json:"description"`
}
