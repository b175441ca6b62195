package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
)

// Notification is an in-app message tied to an order or to shop hours.
type Notification struct {
	ID        uuid.UUID              `json:"id"`
	OrderID   string                 `json:"order_id,omitempty"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Type      enums.NotificationType `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Read      bool                   `json:"read"`
}
