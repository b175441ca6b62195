package checkout

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/JRGCaponde/peixaria-backend/internal/store"
	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
	pkgerrors "github.com/JRGCaponde/peixaria-backend/pkg/errors"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
)

var oneHundred = decimal.NewFromInt(100)

// Request turns the current cart into an order. Staff at the POS may place
// orders for walk-in customers by naming them directly.
type Request struct {
	PaymentMethod   string `json:"payment_method" validate:"required"`
	DeliveryAddress string `json:"delivery_address"`
	Landmark        string `json:"landmark"`
	DeliverySlot    string `json:"delivery_slot"`
	IsReservation   bool   `json:"is_reservation"`
	IsPaid          bool   `json:"is_paid"`
	CustomerName    string `json:"customer_name"`
}

// Service places orders from the cart snapshot.
type Service interface {
	PlaceOrder(ctx context.Context, actor enums.ActorKind, req Request) (*models.Order, error)
}

type service struct {
	store *store.Store
}

// NewService wires checkout dependencies.
func NewService(st *store.Store) (Service, error) {
	if st == nil {
		return nil, fmt.Errorf("state store is required")
	}
	return &service{store: st}, nil
}

func (s *service) PlaceOrder(ctx context.Context, actor enums.ActorKind, req Request) (*models.Order, error) {
	method, err := enums.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method")
	}
	if !req.IsReservation && req.DeliveryAddress == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery address required")
	}
	if req.DeliverySlot != "" && !isValidSlot(req.DeliverySlot) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown delivery slot")
	}

	settings := s.store.Settings()
	if !settings.IsOpen && actor != enums.ActorKindStaff && actor != enums.ActorKindAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "shop is closed")
	}

	subtotal := s.store.CartTotal()
	if subtotal.IsZero() && len(s.store.Cart()) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	total := grandTotal(subtotal, settings, req.IsReservation)

	order := s.store.PlaceOrder(store.OrderDraft{
		CustomerName:    req.CustomerName,
		PaymentMethod:   method,
		DeliveryAddress: req.DeliveryAddress,
		Landmark:        req.Landmark,
		DeliverySlot:    req.DeliverySlot,
		IsReservation:   req.IsReservation,
		IsPaid:          req.IsPaid,
		Total:           &total,
	})

	return &order, nil
}

// grandTotal layers the delivery fee (waived for reservations) and IVA on
// top of the item subtotal.
func grandTotal(subtotal decimal.Decimal, settings models.ShopSettings, isReservation bool) decimal.Decimal {
	total := subtotal
	if !isReservation {
		total = total.Add(settings.BaseDeliveryFee)
	}
	if settings.IVAEnabled {
		total = total.Add(subtotal.Mul(settings.IVARate).Div(oneHundred))
	}
	return total
}
