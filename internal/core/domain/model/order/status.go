package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// Statuses form a validated finite set. Any valid status may follow any
// other: the admin panel overwrites the status freely, so no transition
// table is enforced here.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order.
	Pending

	// Confirmed indicates the order has been accepted by the store.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// OutForDelivery indicates the order has left the store.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	Delivered

	// Cancelled indicates the order was cancelled.
	Cancelled
)

// getValidStatusStrings returns only valid Status values, to support
// validation and parsing. Unknown is intentionally excluded.
func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:        "Pending",
		Confirmed:      "Confirmed",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is a member of the enumerated set.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Safe to call on any
// Status value, including invalid ones. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as received from the API.
// Returns an error for names outside the enumerated set.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("order_status",
		fmt.Errorf("%q is not a valid status", name))
}
