package order

import (
	"fmt"

	"frangodahora/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions:
//
//	AwaitingMarketplace ──> Pending ──> InRoute ──> Delivered
//	         │                 │           │
//	         └─────────────────┴───────────┴──────> Cancelled
//
// AwaitingMarketplace exists only for orders imported from the marketplace
// and precedes Pending. Delivered and Cancelled are terminal: no transition
// leaves them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusAwaitingMarketplace marks an imported order waiting for staff to
	// confirm or reject it against the marketplace.
	StatusAwaitingMarketplace

	// StatusPending is the normal entry state: the order is admitted and
	// waiting for rider assignment (or pickup by the customer).
	StatusPending

	// StatusInRoute indicates the order is assigned to a rider and holds a
	// position in that rider's route.
	StatusInRoute

	// StatusDelivered is a terminal state: the order reached the customer.
	StatusDelivered

	// StatusCancelled is a terminal state. A cancelled order holds no rider
	// and no route position.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:             "Unknown",
		StatusAwaitingMarketplace: "AwaitingMarketplace",
		StatusPending:             "Pending",
		StatusInRoute:             "InRoute",
		StatusDelivered:           "Delivered",
		StatusCancelled:           "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAwaitingMarketplace: "AwaitingMarketplace",
		StatusPending:             "Pending",
		StatusInRoute:             "InRoute",
		StatusDelivered:           "Delivered",
		StatusCancelled:           "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Confirm transitions AwaitingMarketplace to Pending, promoting an imported
// order into the normal pipeline.
func (s Status) Confirm() (Status, error) {
	if s != StatusAwaitingMarketplace {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to confirm", s),
		)
	}
	return StatusPending, nil
}

// Assign transitions Pending to InRoute. Assignment is only valid from
// Pending: imported orders must be confirmed first and in-route orders must
// not be reassigned implicitly.
func (s Status) Assign() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign", s),
		)
	}
	return StatusInRoute, nil
}

// Deliver transitions InRoute to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != StatusInRoute {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s),
		)
	}
	return StatusDelivered, nil
}

// Cancel transitions any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s),
		)
	}
	return StatusCancelled, nil
}

// ValidateCanHaveRider validates the consistency between order status and
// rider assignment: only in-route and delivered orders may hold a rider, and
// an in-route order must hold one.
func (s Status) ValidateCanHaveRider(rider bool) error {
	if rider && s != StatusInRoute && s != StatusDelivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a rider", s),
		)
	}

	if !rider && s == StatusInRoute {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no rider", s),
		)
	}

	return nil
}
