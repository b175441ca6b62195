package models

import "github.com/shopspring/decimal"

// ShopSettings is the singleton shop configuration. Saving replaces the
// whole record; there is no field-level merge and no history.
type ShopSettings struct {
	Name            string          `json:"name"`
	LogoURL         string          `json:"logo_url"`
	NIF             string          `json:"nif"`
	Address         string          `json:"address"`
	WhatsApp        string          `json:"whatsapp"`
	IsOpen          bool            `json:"is_open"`
	BaseDeliveryFee decimal.Decimal `json:"base_delivery_fee"`
	IVARate         decimal.Decimal `json:"iva_rate"`
	IVAEnabled      bool            `json:"iva_enabled"`
	AccentColor     string          `json:"accent_color"`
	OpeningTime     string          `json:"opening_time"`
	ClosingTime     string          `json:"closing_time"`
	NotifyOnOpen    bool            `json:"notify_on_open"`
	NotifyOnClose   bool            `json:"notify_on_close"`
}
