package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
)

const fallbackCustomerName = "Consumidor"

// OrderDraft carries caller-supplied order fields. Set fields take
// precedence over the defaults computed at placement; zero values mean
// "not supplied" (for the booleans the two are indistinguishable, which
// matches placement defaults of false).
type OrderDraft struct {
	CustomerID      string
	CustomerName    string
	PaymentMethod   enums.PaymentMethod
	DeliveryAddress string
	Landmark        string
	DeliverySlot    string
	IsReservation   bool
	IsPaid          bool
	Total           *decimal.Decimal
	Status          enums.OrderStatus
}

// PlaceOrder builds an order from the current cart snapshot, overlays the
// draft, prepends it to the order collection (most-recent-first) and clears
// the cart. The generated id is unique within the running session.
func (s *Store) PlaceOrder(draft OrderDraft) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.cart))
	copy(items, s.cart)

	order := models.Order{
		ID:           s.nextOrderIDLocked(),
		CustomerID:   models.GuestCustomerID,
		CustomerName: fallbackCustomerName,
		Items:        items,
		Total:        s.cartTotalLocked(),
		Status:       enums.OrderStatusPending,
		CreatedAt:    s.now(),
	}

	if s.session.Kind == enums.ActorKindCustomer && s.session.Customer != nil {
		order.CustomerID = s.session.Customer.ID.String()
		order.CustomerName = s.session.Customer.Name
	}

	if draft.CustomerID != "" {
		order.CustomerID = draft.CustomerID
	}
	if draft.CustomerName != "" {
		order.CustomerName = draft.CustomerName
	}
	if draft.Total != nil {
		order.Total = *draft.Total
	}
	if draft.Status.IsValid() {
		order.Status = draft.Status
	}
	order.PaymentMethod = draft.PaymentMethod
	order.DeliveryAddress = draft.DeliveryAddress
	order.Landmark = draft.Landmark
	order.DeliverySlot = draft.DeliverySlot
	order.IsReservation = draft.IsReservation
	order.IsPaid = draft.IsPaid

	s.orders = append([]models.Order{order}, s.orders...)
	s.cart = nil

	return order
}

// SetOrderStatus replaces the status of the matching order. Any status may
// follow any other; the board enforces no transition graph. Unknown ids are
// a no-op, reported through the boolean.
func (s *Store) SetOrderStatus(orderID string, status enums.OrderStatus) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			return s.orders[i], true
		}
	}
	return models.Order{}, false
}

// Orders returns a copy of the order collection, most recent first.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrdersForCustomer filters the collection to one customer id.
func (s *Store) OrdersForCustomer(customerID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, order := range s.orders {
		if order.CustomerID == customerID {
			out = append(out, order)
		}
	}
	return out
}

// FindOrder returns the order with the given id.
func (s *Store) FindOrder(orderID string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.ID == orderID {
			return order, true
		}
	}
	return models.Order{}, false
}

func (s *Store) nextOrderIDLocked() string {
	for {
		id := fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.NewString()[:8]))
		taken := false
		for i := range s.orders {
			if s.orders[i].ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
