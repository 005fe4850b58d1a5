// Package establishment contains the marketplace establishment registration:
// the remote identity and credentials the sync engine authenticates with,
// plus the per-establishment automation flags.
package establishment

import (
	"errors"
	"fmt"

	"frangodahora/internal/pkg/errs"
)

// ErrEstablishmentIsNotConstructed is returned when an Establishment instance
// was not created through NewEstablishment or RestoreEstablishment.
var ErrEstablishmentIsNotConstructed = errors.New(
	"Establishment must be created via NewEstablishment or RestoreEstablishment",
)

// Establishment is one storefront registered on the marketplace.
//
// AutoCloseStore makes the sync cycle close the remote storefront when local
// availability drops below one unit and reopen it when stock returns.
// AutoRejectOrders makes the cycle reject remote orders exceeding the
// running remaining-stock counter; with the flag off every remote order is
// imported and handled manually, even when it overbooks.
type Establishment struct {
	id             int64
	remoteID       int64
	developerToken string
	name           string

	active           bool
	autoCloseStore   bool
	autoRejectOrders bool

	isConstructed bool
}

// NewEstablishment registers an establishment. New registrations start
// active with both automations disabled.
func NewEstablishment(remoteID int64, developerToken, name string) (*Establishment, error) {
	if remoteID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"remote establishment id",
			fmt.Errorf("%d is not a valid id", remoteID),
		)
	}
	if developerToken == "" {
		return nil, errs.NewValueIsRequiredError("developer token")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("establishment name")
	}

	return &Establishment{
		remoteID:       remoteID,
		developerToken: developerToken,
		name:           name,
		active:         true,
		isConstructed:  true,
	}, nil
}

// RestoreEstablishment reconstructs an establishment from persistence.
func RestoreEstablishment(
	id int64,
	remoteID int64,
	developerToken, name string,
	active, autoCloseStore, autoRejectOrders bool,
) (*Establishment, error) {
	e, err := NewEstablishment(remoteID, developerToken, name)
	if err != nil {
		return nil, err
	}

	e.id = id
	e.active = active
	e.autoCloseStore = autoCloseStore
	e.autoRejectOrders = autoRejectOrders
	return e, nil
}

// Validate ensures the Establishment was created through a constructor.
func (e *Establishment) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEstablishmentIsNotConstructed
	}
	return nil
}

// ID returns the local identifier, zero until persisted.
func (e *Establishment) ID() int64 {
	return e.id
}

// AttachID sets the identifier assigned by the datastore.
func (e *Establishment) AttachID(id int64) error {
	if e.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"establishment id",
			fmt.Errorf("establishment already has id %d", e.id),
		)
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("establishment id", fmt.Errorf("%d is not a valid id", id))
	}
	e.id = id
	return nil
}

// RemoteID returns the marketplace's numeric id for this establishment.
func (e *Establishment) RemoteID() int64 {
	return e.remoteID
}

// DeveloperToken returns the credential used to authenticate.
func (e *Establishment) DeveloperToken() string {
	return e.developerToken
}

// Name returns the display name.
func (e *Establishment) Name() string {
	return e.name
}

// IsActive reports whether the sync engine polls this establishment.
func (e *Establishment) IsActive() bool {
	return e.active
}

// AutoCloseStore reports whether the storefront toggle automation is on.
func (e *Establishment) AutoCloseStore() bool {
	return e.autoCloseStore
}

// AutoRejectOrders reports whether stock-based auto-rejection is on.
func (e *Establishment) AutoRejectOrders() bool {
	return e.autoRejectOrders
}

// SetActive enables or disables polling for this establishment.
func (e *Establishment) SetActive(active bool) {
	e.active = active
}

// SetAutomations updates the automation flags.
func (e *Establishment) SetAutomations(autoCloseStore, autoRejectOrders bool) {
	e.autoCloseStore = autoCloseStore
	e.autoRejectOrders = autoRejectOrders
}
