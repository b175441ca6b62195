package enums

import "fmt"

// OrderStatus tracks the lifecycle of a placed order. Every order starts as
// Pendente; the board accepts any status change, there is no transition graph.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pendente"
	OrderStatusPreparing      OrderStatus = "Preparando"
	OrderStatusOutForDelivery OrderStatus = "Em Entrega"
	OrderStatusDelivered      OrderStatus = "Entregue"
	OrderStatusCancelled      OrderStatus = "Cancelado"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// String implements fmt.Stringer.
func (o OrderStatus) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OrderStatus.
func (o OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
