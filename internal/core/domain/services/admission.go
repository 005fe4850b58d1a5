package services

import (
	"fmt"

	"frangodahora/internal/core/domain/model/stock"
	"frangodahora/internal/pkg/errs"
)

// Admission decides whether a new demand against the day's finite stock is
// accepted. All methods are pure: they look only at the values passed in,
// so the caller decides what "current" means and how the check is serialized
// with the subsequent write.
type Admission struct{}

// NewAdmission creates the admission service.
func NewAdmission() Admission {
	return Admission{}
}

// AdmitOrder accepts a manual order when the requested quantity fits the
// remaining stock. The caller must hold the day's stock lock across this
// check and the following insert.
func (Admission) AdmitOrder(availability stock.Availability, requested float64) error {
	if requested <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"requested quantity",
			fmt.Errorf("%v is not greater than 0", requested),
		)
	}
	if requested > availability.Remaining {
		return errs.NewInsufficientStockError(requested, availability.Remaining)
	}
	return nil
}

// AdmitBagIncrease accepts an increase of a rider's bag allotment when it
// fits what is left after pickup reservations and the quantities already
// allotted to all riders that day:
//
//	increase <= initial − reservedForPickup − totalAllotted
//
// Decreases are not admission-checked; callers apply them directly.
func (Admission) AdmitBagIncrease(
	availability stock.Availability,
	reservedForPickup float64,
	totalAllotted float64,
	increase float64,
) error {
	if increase <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"bag increase",
			fmt.Errorf("%v is not greater than 0", increase),
		)
	}

	allottable := availability.Initial - reservedForPickup - totalAllotted
	if increase > allottable {
		return errs.NewInsufficientStockError(increase, allottable)
	}
	return nil
}

// CycleCounter is the running remaining-stock counter of one polling cycle.
// It is seeded once from the ledger when the cycle starts and decremented
// in memory for every order imported during the cycle, so orders accepted
// earlier in the same cycle count against later ones even before they are
// durably persisted. The counter is cycle-scoped and discarded at cycle end.
type CycleCounter struct {
	remaining float64
}

// NewCycleCounter seeds a counter with the stock remaining at cycle start.
func NewCycleCounter(remaining float64) *CycleCounter {
	return &CycleCounter{remaining: remaining}
}

// Remaining returns the stock still available within this cycle.
func (c *CycleCounter) Remaining() float64 {
	return c.remaining
}

// Admit decides the marketplace admission for one remote order. With
// autoReject disabled every order is accepted regardless of stock — the
// business chooses to overbook and resolve manually. With it enabled, the
// order is rejected when it exceeds the running counter.
func (c *CycleCounter) Admit(requested float64, autoReject bool) error {
	if !autoReject {
		return nil
	}
	if requested > c.remaining {
		return errs.NewInsufficientStockError(requested, c.remaining)
	}
	return nil
}

// Consume decrements the counter after a genuinely new import. Duplicate
// deliveries of an already-imported order must not consume.
func (c *CycleCounter) Consume(quantity float64) {
	c.remaining -= quantity
}
