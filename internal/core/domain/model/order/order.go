package order

import (
	"errors"
	"fmt"
	"time"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PickupAddress is the sentinel destination meaning the customer collects the
// order at the counter instead of having it delivered.
const PickupAddress = "Pickup"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through one of the constructor functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder, NewMarketplaceOrder or RestoreOrder")

	// ErrNotAMarketplaceOrder is returned when a marketplace-only operation
	// is applied to an order without an external id.
	ErrNotAMarketplaceOrder = errors.New("order has no marketplace id")

	// ErrAwaitingOrdersMustBeRejected is returned when a plain cancellation
	// is attempted on an order still awaiting a marketplace decision. Those
	// go through the reject flow so the marketplace is informed.
	ErrAwaitingOrdersMustBeRejected = errors.New(
		"order awaits a marketplace decision and must be rejected, not cancelled",
	)
)

// Customer identifies who placed the order.
type Customer struct {
	Name  string
	Phone string
}

// Pricing is the commercial snapshot taken at admission time: the staple
// unit price, the delivery fee for the destination neighborhood, and the
// resulting total. Stored as decimals so money never rides on a float.
type Pricing struct {
	UnitPrice   decimal.Decimal
	DeliveryFee decimal.Decimal
	TotalPrice  decimal.Decimal
}

// Details groups the mutable attributes of an order: who ordered, where it
// goes, how much of the staple product, and how it is paid.
type Details struct {
	Customer        Customer
	Address         string
	Neighborhood    string
	Reference       string
	Quantity        kernel.Quantity
	Chopped         bool
	Pricing         Pricing
	PaymentMethod   PaymentMethod
	Notes           string
	ExpectedMinutes int
}

// Order is the aggregate root for one sale. It owns the lifecycle status,
// the rider assignment with its route position, and — for marketplace
// imports — the external identity that makes the import idempotent.
//
// Invariants:
//   - quantity is greater than zero
//   - the external id, when present, never changes
//   - a cancelled order holds no rider and no route position
//   - a route position is only meaningful while the order is in route
//   - status transitions follow the Status state machine
type Order struct {
	// id is the local identifier; zero until the order is persisted.
	id int64

	// externalID is the marketplace order code, unique when present.
	externalID *int64

	// externalEstablishmentID is the marketplace establishment the order
	// came from.
	externalEstablishmentID *int64

	// day is the business day the order consumes stock from.
	day kernel.Day

	placedAt time.Time
	channel  Channel
	details  Details

	status        Status
	riderID       *int64
	routePosition int

	isConstructed bool
}

// NewOrder creates a manually entered order in Pending status. The order is
// admitted by the caller before construction; the constructor only enforces
// structural invariants.
func NewOrder(day kernel.Day, placedAt time.Time, channel Channel, details Details) (*Order, error) {
	o := &Order{
		placedAt:      placedAt,
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setDay(day),
		o.setChannel(channel),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// NewMarketplaceOrder creates an order imported from the marketplace. It
// starts in AwaitingMarketplace status and carries the external identity that
// the idempotent insert is keyed on. The sales channel is always Marketplace.
func NewMarketplaceOrder(
	externalID int64,
	establishmentID int64,
	day kernel.Day,
	placedAt time.Time,
	details Details,
) (*Order, error) {
	if externalID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"external id",
			fmt.Errorf("%d is not a valid marketplace order code", externalID),
		)
	}

	o := &Order{
		externalID:              &externalID,
		externalEstablishmentID: &establishmentID,
		placedAt:                placedAt,
		channel:                 ChannelMarketplace,
		status:                  StatusAwaitingMarketplace,
		isConstructed:           true,
	}

	if err := errors.Join(
		o.setDay(day),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, revalidating the
// consistency between status, rider assignment and route position.
func RestoreOrder(
	id int64,
	externalID *int64,
	externalEstablishmentID *int64,
	day kernel.Day,
	placedAt time.Time,
	channel Channel,
	details Details,
	status Status,
	riderID *int64,
	routePosition int,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveRider(riderID != nil); err != nil {
		return nil, err
	}
	if status == StatusAwaitingMarketplace && externalID == nil {
		return nil, errs.NewValueIsRequiredError("external id for an order awaiting marketplace confirmation")
	}

	o := &Order{
		id:                      id,
		externalID:              externalID,
		externalEstablishmentID: externalEstablishmentID,
		placedAt:                placedAt,
		status:                  status,
		riderID:                 riderID,
		routePosition:           routePosition,
		isConstructed:           true,
	}

	if err := errors.Join(
		o.setDay(day),
		o.setChannel(channel),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the local identifier, zero until persisted.
func (o *Order) ID() int64 {
	return o.id
}

// AttachID sets the local identifier assigned by the datastore.
// It can only be applied once, to a not-yet-persisted order.
func (o *Order) AttachID(id int64) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id",
			fmt.Errorf("order already has id %d", o.id),
		)
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not a valid id", id))
	}
	o.id = id
	return nil
}

// ExternalID returns the marketplace order code, nil for local orders.
func (o *Order) ExternalID() *int64 {
	return o.externalID
}

// ExternalEstablishmentID returns the marketplace establishment the order
// came from, nil for local orders.
func (o *Order) ExternalEstablishmentID() *int64 {
	return o.externalEstablishmentID
}

// Day returns the business day the order consumes stock from.
func (o *Order) Day() kernel.Day {
	return o.day
}

// PlacedAt returns the moment the order was taken.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Channel returns the sales channel.
func (o *Order) Channel() Channel {
	return o.channel
}

// Details returns the order attributes.
func (o *Order) Details() Details {
	return o.details
}

// Quantity returns the staple quantity of the order.
func (o *Order) Quantity() kernel.Quantity {
	return o.details.Quantity
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Rider returns the assigned rider's id, nil while unassigned.
func (o *Order) Rider() *int64 {
	return o.riderID
}

// RoutePosition returns the order's position in its rider's route. The value
// is only meaningful while the order is in route.
func (o *Order) RoutePosition() int {
	return o.routePosition
}

// IsPickup reports whether the customer collects the order at the counter.
func (o *Order) IsPickup() bool {
	return o.details.Address == PickupAddress
}

// IsEqual compares two orders by their local identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ConfirmMarketplace promotes an imported order into the normal pipeline
// after the remote confirm action succeeded. Only valid from
// AwaitingMarketplace and only for orders carrying an external id.
func (o *Order) ConfirmMarketplace() error {
	if o.externalID == nil {
		return ErrNotAMarketplaceOrder
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Assign puts the order into a rider's route at the given position.
// Only valid from Pending.
func (o *Order) Assign(riderID int64, position int) error {
	if riderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("rider id", fmt.Errorf("%d is not a valid id", riderID))
	}
	if position < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"route position",
			fmt.Errorf("%d is not greater than 0", position),
		)
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = &riderID
	o.routePosition = position
	return nil
}

// Reposition moves an in-route order to a new position within its rider's
// route. Used by bulk reordering.
func (o *Order) Reposition(position int) error {
	if o.status != StatusInRoute {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reposition", o.status),
		)
	}
	if position < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"route position",
			fmt.Errorf("%d is not greater than 0", position),
		)
	}

	o.routePosition = position
	return nil
}

// Deliver marks an in-route order as delivered.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkPickedUp marks a pickup order as delivered directly from Pending.
// Pickup orders never enter a route, so this is the one transition that
// bypasses InRoute.
func (o *Order) MarkPickedUp() error {
	if !o.IsPickup() {
		return errs.NewValueIsInvalidErrorWithCause(
			"address",
			fmt.Errorf("order %d is not a pickup order", o.id),
		)
	}
	if o.status != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to pick up", o.status),
		)
	}

	o.status = StatusDelivered
	return nil
}

// Cancel terminates the order from any non-terminal status and clears the
// rider assignment and route position.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = nil
	o.routePosition = 0
	return nil
}

// UpdateDetails replaces the order attributes. Terminal orders cannot be
// edited.
func (o *Order) UpdateDetails(details Details) error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to edit", o.status),
		)
	}
	return o.setDetails(details)
}

func (o *Order) setDay(day kernel.Day) error {
	if err := day.Validate(); err != nil {
		return err
	}
	o.day = day
	return nil
}

func (o *Order) setChannel(channel Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	o.channel = channel
	return nil
}

func (o *Order) setDetails(details Details) error {
	if err := details.Quantity.Validate(); err != nil {
		return err
	}
	if details.Address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if err := details.PaymentMethod.Validate(); err != nil {
		return err
	}
	if details.Pricing.TotalPrice.IsNegative() || details.Pricing.DeliveryFee.IsNegative() {
		return errs.NewValueIsInvalidError("pricing")
	}

	o.details = details
	return nil
}
