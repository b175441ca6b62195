package orders

import (
	"context"
	"fmt"

	"github.com/JRGCaponde/peixaria-backend/internal/store"
	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
	pkgerrors "github.com/JRGCaponde/peixaria-backend/pkg/errors"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
)

// Actor identifies who is asking, so customers only ever see their own
// orders while staff and admin see the whole board.
type Actor struct {
	Kind enums.ActorKind
	ID   string
}

// Service exposes the order board and the customer order history.
type Service interface {
	List(ctx context.Context, actor Actor) ([]models.Order, error)
	Get(ctx context.Context, actor Actor, orderID string) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error)
}

type service struct {
	store *store.Store
}

// NewService wires order dependencies.
func NewService(st *store.Store) (Service, error) {
	if st == nil {
		return nil, fmt.Errorf("state store is required")
	}
	return &service{store: st}, nil
}

func (s *service) List(ctx context.Context, actor Actor) ([]models.Order, error) {
	switch actor.Kind {
	case enums.ActorKindAdmin, enums.ActorKindStaff:
		return s.store.Orders(), nil
	case enums.ActorKindCustomer:
		return s.store.OrdersForCustomer(actor.ID), nil
	default:
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "no order visibility for this actor")
	}
}

func (s *service) Get(ctx context.Context, actor Actor, orderID string) (*models.Order, error) {
	order, ok := s.store.FindOrder(orderID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	if actor.Kind == enums.ActorKindCustomer && order.CustomerID != actor.ID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return &order, nil
}

// UpdateStatus moves an order on the board. Any known status may follow any
// other; only unknown status values are rejected. Each move produces a
// status notification, and going out for delivery also starts tracking.
func (s *service) UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	parsed, err := enums.ParseOrderStatus(status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status")
	}

	order, ok := s.store.SetOrderStatus(orderID, parsed)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}

	s.store.AddNotification(models.Notification{
		OrderID: order.ID,
		Title:   fmt.Sprintf("Pedido %s", order.ID),
		Message: fmt.Sprintf("O estado do pedido %s mudou para %s.", order.ID, parsed),
		Type:    enums.NotificationTypeStatusUpdate,
	})
	if parsed == enums.OrderStatusOutForDelivery {
		s.store.AddNotification(models.Notification{
			OrderID: order.ID,
			Title:   fmt.Sprintf("Pedido %s", order.ID),
			Message: fmt.Sprintf("O pedido %s saiu para entrega.", order.ID),
			Type:    enums.NotificationTypeDeliveryTracking,
		})
	}

	return &order, nil
}
