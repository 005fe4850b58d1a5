package commands

import (
	"errors"

	"frangodahora/internal/pkg/guard"
)

var (
	ErrRejectMarketplaceOrderCommandIsNotConstructed = errors.New(
		"RejectMarketplaceOrderCommand must be created via NewRejectMarketplaceOrderCommand constructor",
	)
	ErrRejectionReasonIsRequired = errors.New("rejection reason is required")
)

// RejectMarketplaceOrderCommand rejects an imported marketplace order. The
// reason is shown to the customer by the marketplace and is mandatory.
type RejectMarketplaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	reason  string

	guard guard.ConstructorGuard
}

// NewRejectMarketplaceOrderCommand creates a command to reject an imported order.
func NewRejectMarketplaceOrderCommand(orderID int64, reason string) (RejectMarketplaceOrderCommand, error) {
	rejectCommand := RejectMarketplaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setOrderID(orderID),
		rejectCommand.setReason(reason),
	); err != nil {
		return RejectMarketplaceOrderCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectMarketplaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectMarketplaceOrderCommandIsNotConstructed)
}

// OrderID returns the local id of the order to reject.
func (c RejectMarketplaceOrderCommand) OrderID() int64 {
	return c.orderID
}

// Reason returns the customer-visible rejection reason.
func (c RejectMarketplaceOrderCommand) Reason() string {
	return c.reason
}

func (c *RejectMarketplaceOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *RejectMarketplaceOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}

	c.reason = reason
	return nil
}
