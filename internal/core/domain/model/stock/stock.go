// Package stock contains the perishable daily stock model.
//
// A StockDay records only the initial quantity staff prepared for a calendar
// day. Consumption is never stored: the ledger derives it from the
// non-cancelled orders of that day on every read, so there is no cached
// counter to drift out of sync with the order store.
package stock

import (
	"errors"
	"fmt"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/pkg/errs"
)

// ErrStockDayIsNotConstructed is returned when a StockDay instance was not
// created through NewStockDay or RestoreStockDay.
var ErrStockDayIsNotConstructed = errors.New("StockDay must be created via NewStockDay or RestoreStockDay")

// StockDay is the staff-entered initial quantity for one business day.
// A day without an explicit entry defaults to an initial quantity of zero.
type StockDay struct {
	day     kernel.Day
	initial float64

	isConstructed bool
}

// NewStockDay records the initial quantity prepared for a day.
// The quantity must not be negative; zero is valid (nothing prepared).
func NewStockDay(day kernel.Day, initial float64) (*StockDay, error) {
	if err := day.Validate(); err != nil {
		return nil, err
	}
	if initial < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"initial quantity",
			fmt.Errorf("%v is negative", initial),
		)
	}

	return &StockDay{
		day:           day,
		initial:       initial,
		isConstructed: true,
	}, nil
}

// RestoreStockDay reconstructs a StockDay from persistence.
func RestoreStockDay(day kernel.Day, initial float64) (*StockDay, error) {
	return NewStockDay(day, initial)
}

// Validate ensures the StockDay was created through a constructor.
func (s *StockDay) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStockDayIsNotConstructed
	}
	return nil
}

// Day returns the calendar day this entry belongs to.
func (s *StockDay) Day() kernel.Day {
	return s.day
}

// Initial returns the quantity prepared for the day.
func (s *StockDay) Initial() float64 {
	return s.initial
}

// Availability is the ledger's answer for one day: what was prepared, what
// non-cancelled orders consumed, and what remains. Remaining may be negative;
// a negative value signals over-commitment and must be surfaced, not clamped.
type Availability struct {
	Initial   float64
	Consumed  float64
	Remaining float64
}

// NewAvailability derives the remaining quantity from initial and consumed.
func NewAvailability(initial, consumed float64) Availability {
	return Availability{
		Initial:   initial,
		Consumed:  consumed,
		Remaining: initial - consumed,
	}
}
