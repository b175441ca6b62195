package enums

import "fmt"

// NotificationType classifies in-app notifications.
type NotificationType string

const (
	NotificationTypeStatusUpdate     NotificationType = "status_update"
	NotificationTypeDeliveryTracking NotificationType = "delivery_tracking"
	NotificationTypeShopOpen         NotificationType = "shop_open"
	NotificationTypeShopClose        NotificationType = "shop_close"
)

var validNotificationTypes = []NotificationType{
	NotificationTypeStatusUpdate,
	NotificationTypeDeliveryTracking,
	NotificationTypeShopOpen,
	NotificationTypeShopClose,
}

// IsValid checks whether the given type matches the canonical enum.
func (n NotificationType) IsValid() bool {
	for _, candidate := range validNotificationTypes {
		if candidate == n {
			return true
		}
	}
	return false
}

// ParseNotificationType converts raw strings into NotificationType.
func ParseNotificationType(value string) (NotificationType, error) {
	for _, candidate := range validNotificationTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid notification type %q", value)
}
