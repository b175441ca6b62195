package enums

import "fmt"

// ActorKind discriminates who is signed in. Exactly one identity is active
// at a time; Anonymous means nobody is.
type ActorKind string

const (
	ActorKindAnonymous ActorKind = "anonymous"
	ActorKindAdmin     ActorKind = "admin"
	ActorKindStaff     ActorKind = "staff"
	ActorKindCustomer  ActorKind = "customer"
)

var validActorKinds = []ActorKind{
	ActorKindAnonymous,
	ActorKindAdmin,
	ActorKindStaff,
	ActorKindCustomer,
}

// String implements fmt.Stringer.
func (a ActorKind) String() string {
	return string(a)
}

// IsValid reports whether the value is a known ActorKind.
func (a ActorKind) IsValid() bool {
	for _, candidate := range validActorKinds {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseActorKind converts raw input into an ActorKind.
func ParseActorKind(value string) (ActorKind, error) {
	for _, candidate := range validActorKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid actor kind %q", value)
}
