package kernel

import (
	"fmt"
	"strconv"

	"epicerie/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID holds no server-assigned value.
// This error is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or ParseID")

// ID is a value object that represents a numeric identifier assigned by the
// marketplace server. Orders, clients, épiceries and livreurs are all addressed
// by such identifiers; the gateway never mints them itself.
//
// The zero value of ID is invalid and must be constructed using NewID or ParseID.
// ID is immutable and safe for concurrent use.
//
// Example usage:
//
//	orderID, err := kernel.NewID(42)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(orderID.String()) // "42"
type ID struct {
	value int64
}

// NewID creates an ID from a server-assigned numeric value.
// The value must be positive; the marketplace API never issues zero or
// negative identifiers.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a positive identifier", value))
	}
	return ID{value: value}, nil
}

// ParseID parses an ID from its decimal string representation, as carried in
// URL path segments and query parameters.
func ParseID(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// Value returns the underlying numeric identifier.
func (id ID) Value() int64 {
	return id.value
}

// String returns the decimal representation of the identifier.
func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual compares two IDs for equality.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate checks if the ID carries a server-assigned value.
// Returns ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	if id.value == 0 {
		return ErrIDIsNotConstructed
	}
	if id.value < 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a positive identifier", id.value))
	}
	return nil
}
