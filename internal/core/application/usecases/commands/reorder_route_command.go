package commands

import (
	"errors"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/pkg/guard"
)

var (
	ErrReorderRouteCommandIsNotConstructed = errors.New(
		"ReorderRouteCommand must be created via NewReorderRouteCommand constructor",
	)
	ErrRouteOrderIsEmpty      = errors.New("route order must name at least one order")
	ErrRouteOrderHasDuplicate = errors.New("route order names the same order twice")
)

// ReorderRouteCommand rewrites the visiting order of a rider's route for one
// day. The id list is the complete new route, first stop first.
type ReorderRouteCommand struct { //nolint:recvcheck //using for validation
	riderID  int64
	day      kernel.Day
	orderIDs []int64

	guard guard.ConstructorGuard
}

// NewReorderRouteCommand creates a command to reorder a rider's route.
func NewReorderRouteCommand(riderID int64, day kernel.Day, orderIDs []int64) (ReorderRouteCommand, error) {
	reorderCommand := ReorderRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reorderCommand.setRiderID(riderID),
		reorderCommand.setDay(day),
		reorderCommand.setOrderIDs(orderIDs),
	); err != nil {
		return ReorderRouteCommand{}, err
	}

	return reorderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReorderRouteCommand) Validate() error {
	return c.guard.Validate(ErrReorderRouteCommandIsNotConstructed)
}

// RiderID returns the rider whose route is rewritten.
func (c ReorderRouteCommand) RiderID() int64 {
	return c.riderID
}

// Day returns the business day of the route.
func (c ReorderRouteCommand) Day() kernel.Day {
	return c.day
}

// OrderIDs returns the new route, first stop first.
func (c ReorderRouteCommand) OrderIDs() []int64 {
	return c.orderIDs
}

func (c *ReorderRouteCommand) setRiderID(riderID int64) error {
	if riderID <= 0 {
		return ErrRiderIDIsInvalid
	}

	c.riderID = riderID
	return nil
}

func (c *ReorderRouteCommand) setDay(day kernel.Day) error {
	if err := day.Validate(); err != nil {
		return err
	}

	c.day = day
	return nil
}

func (c *ReorderRouteCommand) setOrderIDs(orderIDs []int64) error {
	if len(orderIDs) == 0 {
		return ErrRouteOrderIsEmpty
	}

	seen := make(map[int64]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		if id <= 0 {
			return ErrOrderIDIsInvalid
		}
		if _, dup := seen[id]; dup {
			return ErrRouteOrderHasDuplicate
		}
		seen[id] = struct{}{}
	}

	c.orderIDs = orderIDs
	return nil
}
