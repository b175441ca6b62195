package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JRGCaponde/peixaria-backend/internal/store"
	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
	pkgerrors "github.com/JRGCaponde/peixaria-backend/pkg/errors"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
)

var oneHundred = decimal.NewFromInt(100)

// Service exposes cart mutation and pricing to the storefront and the POS.
type Service interface {
	Add(ctx context.Context, req AddItemRequest) (*View, error)
	Remove(ctx context.Context, productID uuid.UUID, unit string) (*View, error)
	Clear(ctx context.Context)
	View(ctx context.Context) *View
	Quote(ctx context.Context, isReservation bool) *Quote
}

type service struct {
	store *store.Store
}

// NewService wires cart dependencies.
func NewService(st *store.Store) (Service, error) {
	if st == nil {
		return nil, fmt.Errorf("state store is required")
	}
	return &service{store: st}, nil
}

func (s *service) Add(ctx context.Context, req AddItemRequest) (*View, error) {
	unit, err := enums.ParseCartUnit(req.Unit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid unit")
	}
	if req.Quantity.Sign() <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	product, ok := s.store.FindProduct(req.ProductID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	s.store.AddToCart(models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  req.Quantity,
		Unit:      unit,
		Price:     product.PriceFor(unit),
	})

	return s.View(ctx), nil
}

func (s *service) Remove(ctx context.Context, productID uuid.UUID, unit string) (*View, error) {
	parsed, err := enums.ParseCartUnit(unit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid unit")
	}
	s.store.RemoveFromCart(productID, parsed)
	return s.View(ctx), nil
}

func (s *service) Clear(ctx context.Context) {
	s.store.ClearCart()
}

func (s *service) View(ctx context.Context) *View {
	items := s.store.Cart()
	if items == nil {
		items = []models.CartItem{}
	}
	return &View{
		Items:    items,
		Subtotal: s.store.CartTotal(),
	}
}

// Quote applies the delivery fee (waived for in-store reservations) and IVA
// from the current settings on top of the cart subtotal.
func (s *service) Quote(ctx context.Context, isReservation bool) *Quote {
	view := s.View(ctx)
	settings := s.store.Settings()

	fee := decimal.Zero
	if !isReservation {
		fee = settings.BaseDeliveryFee
	}

	iva := decimal.Zero
	if settings.IVAEnabled {
		iva = view.Subtotal.Mul(settings.IVARate).Div(oneHundred)
	}

	return &Quote{
		Items:         view.Items,
		Subtotal:      view.Subtotal,
		DeliveryFee:   fee,
		IVAAmount:     iva,
		Total:         view.Subtotal.Add(fee).Add(iva),
		IsReservation: isReservation,
	}
}
