package store

import (
	"github.com/google/uuid"

	"github.com/JRGCaponde/peixaria-backend/pkg/models"
)

// AddNotification prepends the notification (newest first), assigning an id
// and timestamp when the caller left them zero.
func (s *Store) AddNotification(notification models.Notification) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if notification.Timestamp.IsZero() {
		notification.Timestamp = s.now()
	}
	s.notifications = append([]models.Notification{notification}, s.notifications...)
	return notification
}

// Notifications returns a copy, newest first.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// UnreadNotificationCount counts notifications not yet marked read.
func (s *Store) UnreadNotificationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkNotificationsRead flips every notification to read. There is no
// selective read.
func (s *Store) MarkNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}
