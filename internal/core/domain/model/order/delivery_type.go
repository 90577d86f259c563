package order

import (
	"fmt"

	"epicerie/internal/pkg/errs"
)

// DeliveryType distinguishes orders collected at the store from orders carried
// to the client by a livreur. It is the single canonical definition of the
// enum; the legacy "DELIVERY" wire literal still emitted by older versions of
// the marketplace API is accepted on parse and canonicalized to HomeDelivery.
type DeliveryType int

const (
	// DeliveryTypeUnknown represents an invalid or undefined delivery type.
	DeliveryTypeUnknown DeliveryType = iota

	// Pickup means the client collects the order at the épicerie.
	Pickup

	// HomeDelivery means a livreur transports the order to the client.
	HomeDelivery
)

// getDeliveryTypeStrings returns a map of DeliveryType values to their
// canonical wire representations.
func getDeliveryTypeStrings() map[DeliveryType]string {
	return map[DeliveryType]string{
		DeliveryTypeUnknown: "UNKNOWN",
		Pickup:              "PICKUP",
		HomeDelivery:        "HOME_DELIVERY",
	}
}

// ParseDeliveryType parses a delivery type from its wire representation.
// "HOME_DELIVERY" and the legacy "DELIVERY" literal both map to HomeDelivery.
func ParseDeliveryType(s string) (DeliveryType, error) {
	switch s {
	case "PICKUP":
		return Pickup, nil
	case "HOME_DELIVERY", "DELIVERY":
		return HomeDelivery, nil
	default:
		return DeliveryTypeUnknown, errs.NewValueIsInvalidErrorWithCause("deliveryType",
			fmt.Errorf("%q is not a valid delivery type", s))
	}
}

// Validate checks if the DeliveryType value is valid.
func (d DeliveryType) Validate() error {
	if d != Pickup && d != HomeDelivery {
		return errs.NewValueIsInvalidErrorWithCause("deliveryType",
			fmt.Errorf("%d is not a valid delivery type", d))
	}
	return nil
}

// String returns the canonical wire name of the delivery type.
func (d DeliveryType) String() string {
	if str, ok := getDeliveryTypeStrings()[d]; ok {
		return str
	}
	return "UNKNOWN"
}
