// Package rider contains the rider entity and the daily assignment that
// tracks how much of the day's stock a rider carries in their bag.
package rider

import (
	"errors"
	"fmt"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/pkg/errs"
)

var (
	// ErrRiderIsNotConstructed is returned when a Rider instance was not
	// created through NewRider or RestoreRider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider")

	// ErrAssignmentIsNotConstructed is returned when a DailyAssignment was
	// not created through NewDailyAssignment or RestoreDailyAssignment.
	ErrAssignmentIsNotConstructed = errors.New(
		"DailyAssignment must be created via NewDailyAssignment or RestoreDailyAssignment",
	)
)

// Rider is a named delivery rider. The name is unique: the daily operation
// flow looks riders up by name and registers unknown ones on the fly.
type Rider struct {
	id   int64
	name string

	isConstructed bool
}

// NewRider creates a rider with the given unique name.
func NewRider(name string) (*Rider, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("rider name")
	}

	return &Rider{
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreRider reconstructs a rider from persistence.
func RestoreRider(id int64, name string) (*Rider, error) {
	r, err := NewRider(name)
	if err != nil {
		return nil, err
	}
	r.id = id
	return r, nil
}

// Validate ensures the Rider was created through a constructor.
func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}
	return nil
}

// ID returns the local identifier, zero until persisted.
func (r *Rider) ID() int64 {
	return r.id
}

// AttachID sets the identifier assigned by the datastore.
func (r *Rider) AttachID(id int64) error {
	if r.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"rider id",
			fmt.Errorf("rider already has id %d", r.id),
		)
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("rider id", fmt.Errorf("%d is not a valid id", id))
	}
	r.id = id
	return nil
}

// Name returns the rider's name.
func (r *Rider) Name() string {
	return r.name
}

// DailyAssignment binds a rider to a business day and accumulates the
// quantity allotted to the rider's bag that day. The allotment is adjusted
// up and down over the day as the rider restocks and returns units.
//
// Increases are admission-checked by the caller against the day's stock
// minus the quantity reserved for pickup orders; decreases are always
// accepted.
type DailyAssignment struct {
	riderID int64
	day     kernel.Day
	bag     float64

	isConstructed bool
}

// NewDailyAssignment opens a rider's operation for a day with an empty bag.
func NewDailyAssignment(riderID int64, day kernel.Day) (*DailyAssignment, error) {
	if riderID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("rider id", fmt.Errorf("%d is not a valid id", riderID))
	}
	if err := day.Validate(); err != nil {
		return nil, err
	}

	return &DailyAssignment{
		riderID:       riderID,
		day:           day,
		isConstructed: true,
	}, nil
}

// RestoreDailyAssignment reconstructs a daily assignment from persistence.
func RestoreDailyAssignment(riderID int64, day kernel.Day, bag float64) (*DailyAssignment, error) {
	a, err := NewDailyAssignment(riderID, day)
	if err != nil {
		return nil, err
	}
	if bag < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"bag quantity",
			fmt.Errorf("%v is negative", bag),
		)
	}
	a.bag = bag
	return a, nil
}

// Validate ensures the DailyAssignment was created through a constructor.
func (a *DailyAssignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// RiderID returns the rider this assignment belongs to.
func (a *DailyAssignment) RiderID() int64 {
	return a.riderID
}

// Day returns the business day of the assignment.
func (a *DailyAssignment) Day() kernel.Day {
	return a.day
}

// Bag returns the quantity currently allotted to the rider's bag.
func (a *DailyAssignment) Bag() float64 {
	return a.bag
}

// Adjust changes the bag allotment by delta. A negative delta returns units
// to the counter; the bag can never go below zero.
func (a *DailyAssignment) Adjust(delta float64) error {
	if a.bag+delta < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"bag quantity",
			fmt.Errorf("returning %v would leave the bag at %v", -delta, a.bag+delta),
		)
	}
	a.bag += delta
	return nil
}
