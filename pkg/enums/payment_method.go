package enums

import "fmt"

// PaymentMethod names how an order is settled. Payment capture happens
// outside the system; the method is recorded on the order as-is.
type PaymentMethod string

const (
	PaymentMethodBankTransfer   PaymentMethod = "Transferência Bancária"
	PaymentMethodMulticaixa     PaymentMethod = "Multicaixa Express"
	PaymentMethodCashOnDelivery PaymentMethod = "Dinheiro na Entrega"
	PaymentMethodOnline         PaymentMethod = "Pagamento Online (Cartão/Express)"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodBankTransfer,
	PaymentMethodMulticaixa,
	PaymentMethodCashOnDelivery,
	PaymentMethodOnline,
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}
