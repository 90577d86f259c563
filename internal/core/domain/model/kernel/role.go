package kernel

import (
	"fmt"

	"epicerie/internal/pkg/errs"
)

// Role identifies which of the three marketplace actors is triggering an
// operation. Order lifecycle transitions are gated per role: a livreur may not
// accept an order, an épicier may not start a delivery, and the client app
// never sets statuses directly.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleClient is the shopper who placed the order.
	RoleClient

	// RoleEpicier is the merchant preparing and fulfilling the order.
	RoleEpicier

	// RoleLivreur is the delivery driver transporting home-delivery orders.
	RoleLivreur
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "UNKNOWN",
		RoleClient:  "CLIENT",
		RoleEpicier: "EPICIER",
		RoleLivreur: "LIVREUR",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleClient:  "CLIENT",
		RoleEpicier: "EPICIER",
		RoleLivreur: "LIVREUR",
	}
}

// ParseRole parses a role from its wire representation as carried in the
// bearer token claims. Unrecognized values map to RoleUnknown with an error.
func ParseRole(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: RoleClient, RoleEpicier, RoleLivreur.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role.
// This method implements the fmt.Stringer interface and is safe to call on
// any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
