package store

import (
	"github.com/shopspring/decimal"

	"github.com/JRGCaponde/peixaria-backend/pkg/models"
)

// DefaultSettings are the shop defaults before the first save.
func DefaultSettings() models.ShopSettings {
	return models.ShopSettings{
		Name:            "Khrismir",
		Address:         "Lubango, Huíla - Angola",
		IsOpen:          true,
		BaseDeliveryFee: decimal.NewFromInt(1000),
		IVARate:         decimal.NewFromInt(14),
		IVAEnabled:      true,
		AccentColor:     "#3b82f6",
		OpeningTime:     "08:00",
		ClosingTime:     "18:00",
		NotifyOnOpen:    true,
		NotifyOnClose:   false,
	}
}

// Settings returns the current shop settings.
func (s *Store) Settings() models.ShopSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// ReplaceSettings swaps the settings singleton wholesale. Fields absent
// from the new value do not survive; this is a replace, never a merge.
func (s *Store) ReplaceSettings(settings models.ShopSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}
