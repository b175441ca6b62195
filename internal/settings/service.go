package settings

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/JRGCaponde/peixaria-backend/internal/store"
	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
)

// Request is the full settings record. Saving replaces everything the shop
// remembers about itself, so every field must be present.
type Request struct {
	Name            string          `json:"name" validate:"required"`
	LogoURL         string          `json:"logo_url"`
	NIF             string          `json:"nif"`
	Address         string          `json:"address" validate:"required"`
	WhatsApp        string          `json:"whatsapp"`
	IsOpen          bool            `json:"is_open"`
	BaseDeliveryFee decimal.Decimal `json:"base_delivery_fee"`
	IVARate         decimal.Decimal `json:"iva_rate"`
	IVAEnabled      bool            `json:"iva_enabled"`
	AccentColor     string          `json:"accent_color" validate:"required,hexcolor"`
	OpeningTime     string          `json:"opening_time" validate:"required"`
	ClosingTime     string          `json:"closing_time" validate:"required"`
	NotifyOnOpen    bool            `json:"notify_on_open"`
	NotifyOnClose   bool            `json:"notify_on_close"`
}

// Service is the settings form surface.
type Service interface {
	Get(ctx context.Context) models.ShopSettings
	Replace(ctx context.Context, req Request) models.ShopSettings
}

type service struct {
	store *store.Store
}

// NewService wires settings dependencies.
func NewService(st *store.Store) (Service, error) {
	if st == nil {
		return nil, fmt.Errorf("state store is required")
	}
	return &service{store: st}, nil
}

func (s *service) Get(ctx context.Context) models.ShopSettings {
	return s.store.Settings()
}

// Replace swaps the settings wholesale and announces open/close flips when
// the saved record asks for them.
func (s *service) Replace(ctx context.Context, req Request) models.ShopSettings {
	previous := s.store.Settings()

	next := models.ShopSettings{
		Name:            req.Name,
		LogoURL:         req.LogoURL,
		NIF:             req.NIF,
		Address:         req.Address,
		WhatsApp:        req.WhatsApp,
		IsOpen:          req.IsOpen,
		BaseDeliveryFee: req.BaseDeliveryFee,
		IVARate:         req.IVARate,
		IVAEnabled:      req.IVAEnabled,
		AccentColor:     req.AccentColor,
		OpeningTime:     req.OpeningTime,
		ClosingTime:     req.ClosingTime,
		NotifyOnOpen:    req.NotifyOnOpen,
		NotifyOnClose:   req.NotifyOnClose,
	}
	s.store.ReplaceSettings(next)

	if next.IsOpen != previous.IsOpen {
		if next.IsOpen && next.NotifyOnOpen {
			s.store.AddNotification(models.Notification{
				Title:   next.Name,
				Message: fmt.Sprintf("A %s está aberta! Horário: %s - %s.", next.Name, next.OpeningTime, next.ClosingTime),
				Type:    enums.NotificationTypeShopOpen,
			})
		}
		if !next.IsOpen && next.NotifyOnClose {
			s.store.AddNotification(models.Notification{
				Title:   next.Name,
				Message: fmt.Sprintf("A %s está fechada. Voltamos às %s.", next.Name, next.OpeningTime),
				Type:    enums.NotificationTypeShopClose,
			})
		}
	}

	return next
}
