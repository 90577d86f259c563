package order

import (
	"errors"
	"fmt"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/pkg/errs"
	"epicerie/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through one of the item constructors.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem, NewRechargeItem or RestoreItem")

// ItemStatus represents the preparation state of a single order line,
// used only while the épicier is picking the order.
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined item status.
	ItemStatusUnknown ItemStatus = iota

	// ItemPending means the line has not been handled yet.
	ItemPending

	// ItemScanned means the product barcode was scanned during picking.
	ItemScanned

	// ItemUnavailable means the product is out of stock.
	ItemUnavailable

	// ItemModified means the épicier adjusted the line (e.g. substituted weight).
	ItemModified

	// ItemCompleted means the line is fully prepared.
	ItemCompleted
)

// getItemStatusStrings returns a map of ItemStatus values to their wire representations.
func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown: "UNKNOWN",
		ItemPending:       "PENDING",
		ItemScanned:       "SCANNED",
		ItemUnavailable:   "UNAVAILABLE",
		ItemModified:      "MODIFIED",
		ItemCompleted:     "COMPLETED",
	}
}

// ParseItemStatus parses an item status from its wire representation.
func ParseItemStatus(s string) (ItemStatus, error) {
	for status, str := range getItemStatusStrings() {
		if status != ItemStatusUnknown && str == s {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause("itemStatus",
		fmt.Errorf("%q is not a valid item status", s))
}

// Validate checks if the ItemStatus value is valid.
func (s ItemStatus) Validate() error {
	if s <= ItemStatusUnknown || s > ItemCompleted {
		return errs.NewValueIsInvalidErrorWithCause("itemStatus",
			fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// String returns the wire name of the item status.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Item is a single line of an order: either a product line with a quantity and
// unit price, or a telecom recharge sold alongside groceries.
//
// Invariants:
//   - product lines: quantity > 0 (fractional quantities are legal for goods
//     sold by weight or volume) and lineTotal = quantity × unitPrice
//   - recharge lines: quantity is fixed at 1 and lineTotal equals the recharge
//     price; there is no product reference
//   - the preparation status is only mutated while the owning order is in a
//     preparation state; Order enforces the freeze
type Item struct {
	// productID references the catalog product; nil for recharge lines
	productID *kernel.ID
	// recharge marks a telecom airtime top-up line
	recharge bool
	// quantity is the ordered amount; may be fractional for weight-sold goods
	quantity decimal.Decimal
	// unitPrice is the price per unit at checkout time
	unitPrice decimal.Decimal
	// lineTotal is quantity × unitPrice (or the recharge price)
	lineTotal decimal.Decimal
	// status is the preparation state of the line
	status ItemStatus
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates a product order line. The line total is derived from the
// quantity and unit price, never supplied by the caller.
func NewItem(productID kernel.ID, quantity, unitPrice decimal.Decimal) (*Item, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if !quantity.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not greater than 0", quantity.String()))
	}
	if unitPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice.String()))
	}

	return &Item{
		productID: &productID,
		quantity:  quantity,
		unitPrice: unitPrice,
		lineTotal: quantity.Mul(unitPrice),
		status:    ItemPending,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewRechargeItem creates a telecom recharge line. Quantity is fixed at 1 and
// the line total equals the recharge price.
func NewRechargeItem(price decimal.Decimal) (*Item, error) {
	if !price.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price.String()))
	}

	return &Item{
		recharge:  true,
		quantity:  decimal.NewFromInt(1),
		unitPrice: price,
		lineTotal: price,
		status:    ItemPending,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs an order line from an external representation
// (marketplace API response or snapshot cache). The line-total invariant is
// re-checked so corrupt data cannot enter the domain.
func RestoreItem(
	productID *kernel.ID,
	recharge bool,
	quantity, unitPrice, lineTotal decimal.Decimal,
	status ItemStatus,
) (*Item, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	if recharge {
		if productID != nil {
			return nil, errs.NewValueIsInvalidError("productID must be absent on a recharge line")
		}
		if !quantity.Equal(decimal.NewFromInt(1)) {
			return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("recharge quantity is %s, not 1", quantity.String()))
		}
	} else {
		if productID == nil {
			return nil, errs.NewValueIsRequiredError("productID")
		}
		if err := productID.Validate(); err != nil {
			return nil, err
		}
		if !quantity.IsPositive() {
			return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%s is not greater than 0", quantity.String()))
		}
	}

	if !lineTotal.Equal(quantity.Mul(unitPrice)) {
		return nil, errs.NewValueIsInvalidErrorWithCause("lineTotal",
			fmt.Errorf("%s does not equal %s × %s",
				lineTotal.String(), quantity.String(), unitPrice.String()))
	}

	return &Item{
		productID: productID,
		recharge:  recharge,
		quantity:  quantity,
		unitPrice: unitPrice,
		lineTotal: lineTotal,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the referenced product, or nil for a recharge line.
func (i *Item) ProductID() *kernel.ID {
	return i.productID
}

// IsRecharge reports whether the line is a telecom recharge.
func (i *Item) IsRecharge() bool {
	return i.recharge
}

// Quantity returns the ordered amount.
func (i *Item) Quantity() decimal.Decimal {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// LineTotal returns the total for the line.
func (i *Item) LineTotal() decimal.Decimal {
	return i.lineTotal
}

// Status returns the preparation status of the line.
func (i *Item) Status() ItemStatus {
	return i.status
}

// setStatus mutates the preparation status. Only Order may call this, after
// checking that the order is still in a preparation state.
func (i *Item) setStatus(status ItemStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}
