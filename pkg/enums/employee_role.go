package enums

import "fmt"

// EmployeeRole is the staff role on the roster.
type EmployeeRole string

const (
	EmployeeRoleManager  EmployeeRole = "Gerente"
	EmployeeRoleSeller   EmployeeRole = "Vendedor"
	EmployeeRoleDelivery EmployeeRole = "Estafeta"
	EmployeeRoleHandler  EmployeeRole = "Tratador de Peixe"
)

var validEmployeeRoles = []EmployeeRole{
	EmployeeRoleManager,
	EmployeeRoleSeller,
	EmployeeRoleDelivery,
	EmployeeRoleHandler,
}

// String implements fmt.Stringer.
func (e EmployeeRole) String() string {
	return string(e)
}

// IsValid reports whether the value is a known EmployeeRole.
func (e EmployeeRole) IsValid() bool {
	for _, candidate := range validEmployeeRoles {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseEmployeeRole converts raw input into an EmployeeRole.
func ParseEmployeeRole(value string) (EmployeeRole, error) {
	for _, candidate := range validEmployeeRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid employee role %q", value)
}
