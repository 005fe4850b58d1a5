package kernel

import (
	"fmt"
	"math"

	"frangodahora/internal/pkg/errs"
	"frangodahora/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed indicates a Quantity that was not created via
// NewQuantity or QuantityFromUnits.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"Quantity must be created via NewQuantity or QuantityFromUnits",
)

// Quantity is the staple-product amount of an order: a non-negative count of
// whole units plus an optional half unit. The total must be greater than
// zero.
type Quantity struct {
	whole int
	half  bool

	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity of whole units plus an optional half unit.
func NewQuantity(whole int, half bool) (Quantity, error) {
	if whole < 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d whole units is negative", whole),
		)
	}
	if whole == 0 && !half {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("total quantity must be greater than 0"),
		)
	}

	return Quantity{
		whole: whole,
		half:  half,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// QuantityFromUnits builds a Quantity from a fractional unit count.
// Any fractional part counts as the half-unit flag, matching how marketplace
// line items are folded into a local quantity.
func QuantityFromUnits(units float64) (Quantity, error) {
	if units <= 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%v units is not greater than 0", units),
		)
	}

	whole := int(math.Floor(units))
	half := units != math.Floor(units)
	return NewQuantity(whole, half)
}

// Validate ensures the Quantity was created through a constructor.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Whole returns the count of whole units.
func (q Quantity) Whole() int {
	return q.whole
}

// Half reports whether the quantity includes a half unit.
func (q Quantity) Half() bool {
	return q.half
}

// Units returns the total as a fractional count: whole + 0.5 when the half
// flag is set. Multiples of 0.5 are exact in a float64, so stock arithmetic
// on this value does not drift.
func (q Quantity) Units() float64 {
	units := float64(q.whole)
	if q.half {
		units += 0.5
	}
	return units
}

// String renders the quantity for display, e.g. "2" or "2.5".
func (q Quantity) String() string {
	if q.half {
		return fmt.Sprintf("%d.5", q.whole)
	}
	return fmt.Sprintf("%d", q.whole)
}
