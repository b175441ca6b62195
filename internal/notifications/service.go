package notifications

import (
	"context"
	"fmt"

	"github.com/JRGCaponde/peixaria-backend/internal/store"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
)

// ListResult wraps the notification feed with its unread badge count.
type ListResult struct {
	Items  []models.Notification `json:"items"`
	Unread int                   `json:"unread"`
}

// Service is the notification bell surface.
type Service interface {
	List(ctx context.Context) *ListResult
	MarkAllRead(ctx context.Context)
}

type service struct {
	store *store.Store
}

// NewService wires notification dependencies.
func NewService(st *store.Store) (Service, error) {
	if st == nil {
		return nil, fmt.Errorf("state store is required")
	}
	return &service{store: st}, nil
}

func (s *service) List(ctx context.Context) *ListResult {
	items := s.store.Notifications()
	if items == nil {
		items = []models.Notification{}
	}
	return &ListResult{
		Items:  items,
		Unread: s.store.UnreadNotificationCount(),
	}
}

func (s *service) MarkAllRead(ctx context.Context) {
	s.store.MarkNotificationsRead()
}
