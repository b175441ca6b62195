package checkout

// Delivery windows offered at checkout.
var deliverySlots = []string{
	"08:00 - 10:00",
	"10:00 - 12:00",
	"13:00 - 15:00",
	"15:00 - 17:00",
}

// DeliverySlots returns the selectable delivery windows.
func DeliverySlots() []string {
	out := make([]string, len(deliverySlots))
	copy(out, deliverySlots)
	return out
}

func isValidSlot(slot string) bool {
	for _, candidate := range deliverySlots {
		if candidate == slot {
			return true
		}
	}
	return false
}
