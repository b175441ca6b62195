package enums

import "fmt"

// CartUnit is the selling unit of a cart line. Together with the product id
// it forms the line identity: same product, different unit, different line.
type CartUnit string

const (
	CartUnitKg  CartUnit = "kg"
	CartUnitBox CartUnit = "box"
)

var validCartUnits = []CartUnit{
	CartUnitKg,
	CartUnitBox,
}

// String implements fmt.Stringer.
func (c CartUnit) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CartUnit.
func (c CartUnit) IsValid() bool {
	for _, candidate := range validCartUnits {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCartUnit converts raw input into a CartUnit.
func ParseCartUnit(value string) (CartUnit, error) {
	for _, candidate := range validCartUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cart unit %q", value)
}
