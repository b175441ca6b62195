package checkout

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JRGCaponde/peixaria-backend/internal/store"
	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
	pkgerrors "github.com/JRGCaponde/peixaria-backend/pkg/errors"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(store.Params{
		AdminName:         "Administrador Principal",
		AdminEmail:        "admin@khrismir.ao",
		AdminPasswordHash: "$argon2id$v=19$m=8,t=1,p=1$c2FsdHNhbHQ$c2FsdHNhbHRzYWx0c2FsdA",
		Settings:          store.DefaultSettings(),
	})
	if err != nil {
		t.Fatalf("building store: %v", err)
	}
	return st
}

func fillCart(st *store.Store, price int64) {
	st.AddToCart(models.CartItem{
		ProductID: uuid.New(),
		Name:      "Corvina",
		Quantity:  decimal.NewFromInt(1),
		Unit:      enums.CartUnitKg,
		Price:     decimal.NewFromInt(price),
	})
}

func validRequest() Request {
	return Request{
		PaymentMethod:   string(enums.PaymentMethodCashOnDelivery),
		DeliveryAddress: "Bairro Comandante Cowboy, Lubango",
		DeliverySlot:    "08:00 - 10:00",
	}
}

func TestPlaceOrder(t *testing.T) {
	st := newTestStore(t)
	fillCart(st, 10000)
	svc, err := NewService(st)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	order, err := svc.PlaceOrder(context.Background(), enums.ActorKindAnonymous, validRequest())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	// 10000 + 1000 delivery + 14% IVA on the subtotal.
	want := decimal.NewFromInt(12400)
	if !order.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, order.Total)
	}
	if order.Status != enums.OrderStatusPending {
		t.Fatalf("expected Pendente, got %s", order.Status)
	}
	if order.CustomerID != models.GuestCustomerID {
		t.Fatalf("anonymous checkout must be a guest order, got %q", order.CustomerID)
	}
	if len(st.Cart()) != 0 {
		t.Fatal("checkout must clear the cart")
	}
	if len(st.Orders()) != 1 {
		t.Fatalf("expected one stored order, got %d", len(st.Orders()))
	}
}

func TestPlaceOrderReservationSkipsFeeAndAddress(t *testing.T) {
	st := newTestStore(t)
	fillCart(st, 10000)
	svc, err := NewService(st)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	order, err := svc.PlaceOrder(context.Background(), enums.ActorKindAnonymous, Request{
		PaymentMethod: string(enums.PaymentMethodMulticaixa),
		IsReservation: true,
	})
	if err != nil {
		t.Fatalf("reservation failed: %v", err)
	}

	want := decimal.NewFromInt(11400)
	if !order.Total.Equal(want) {
		t.Fatalf("reservation must waive the delivery fee, expected %s got %s", want, order.Total)
	}
	if !order.IsReservation {
		t.Fatal("order must carry the reservation flag")
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	st := newTestStore(t)
	fillCart(st, 10000)
	svc, err := NewService(st)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	req := validRequest()
	req.PaymentMethod = "Fiado"
	if _, err := svc.PlaceOrder(context.Background(), enums.ActorKindAnonymous, req); pkgerrors.As(err) == nil {
		t.Fatal("unknown payment method must fail")
	}

	req = validRequest()
	req.DeliveryAddress = ""
	_, err = svc.PlaceOrder(context.Background(), enums.ActorKindAnonymous, req)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("missing address must fail validation, got %v", err)
	}

	req = validRequest()
	req.DeliverySlot = "23:00 - 23:30"
	_, err = svc.PlaceOrder(context.Background(), enums.ActorKindAnonymous, req)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unknown slot must fail validation, got %v", err)
	}
}

func TestPlaceOrderClosedShop(t *testing.T) {
	st := newTestStore(t)
	fillCart(st, 10000)
	settings := store.DefaultSettings()
	settings.IsOpen = false
	st.ReplaceSettings(settings)
	svc, err := NewService(st)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	_, err = svc.PlaceOrder(context.Background(), enums.ActorKindCustomer, validRequest())
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("customers cannot order while closed, got %v", err)
	}

	// Staff run the POS regardless of the storefront sign.
	if _, err := svc.PlaceOrder(context.Background(), enums.ActorKindStaff, validRequest()); err != nil {
		t.Fatalf("staff checkout while closed failed: %v", err)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	st := newTestStore(t)
	svc, err := NewService(st)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	_, err = svc.PlaceOrder(context.Background(), enums.ActorKindAnonymous, validRequest())
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("empty cart must be a state conflict, got %v", err)
	}
}

func TestDeliverySlots(t *testing.T) {
	slots := DeliverySlots()
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}
	for _, slot := range slots {
		if !isValidSlot(slot) {
			t.Fatalf("advertised slot %q must validate", slot)
		}
	}
}
