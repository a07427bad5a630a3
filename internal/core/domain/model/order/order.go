package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through a constructor. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")
)

// Order represents a customer order as the admin backend consumes it.
// Orders are created elsewhere in the system; this aggregate is read from
// persistence and mutated only through ChangeStatus.
//
// Order maintains these invariants:
//   - Status is always a member of the enumerated set
//   - Total amount is a decimal monetary value, never silently coerced
//   - Can only be created through the RestoreOrder constructor
type Order struct {
	// id is the database identity of the order
	id int64

	// createdAt is the placement timestamp
	createdAt time.Time

	// mobileNumber identifies the customer
	mobileNumber string

	// totalAmount is the order total
	totalAmount decimal.Decimal

	// status is the current fulfillment state
	status Status

	// items are the order lines
	items []Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// RestoreOrder reconstructs an Order from persistence. The status must be a
// valid member of the enumerated set; totals and items are taken as stored.
func RestoreOrder(
	id int64,
	createdAt time.Time,
	mobileNumber string,
	totalAmount decimal.Decimal,
	status Status,
	items []Item,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		createdAt:     createdAt,
		mobileNumber:  mobileNumber,
		totalAmount:   totalAmount,
		status:        status,
		items:         items,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's database identity.
func (o *Order) ID() int64 {
	return o.id
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// MobileNumber returns the customer's mobile number.
func (o *Order) MobileNumber() string {
	return o.mobileNumber
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order lines.
func (o *Order) Items() []Item {
	return o.items
}

// ChangeStatus overwrites the fulfillment status. The new status must be a
// member of the enumerated set; no transition rules apply beyond that.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
