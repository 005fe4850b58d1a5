// Package neighborhood contains the delivery-fee table: one entry per known
// destination neighborhood. Entries are registered lazily, the first time an
// order for an unknown neighborhood is taken.
package neighborhood

import (
	"errors"

	"frangodahora/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrFeeIsNotConstructed is returned when a Fee instance was not created
// through NewFee or RestoreFee.
var ErrFeeIsNotConstructed = errors.New("Fee must be created via NewFee or RestoreFee")

// Fee is the delivery fee charged for one neighborhood. The name is unique;
// re-registering a known neighborhood updates its fee.
type Fee struct {
	name string
	fee  decimal.Decimal

	isConstructed bool
}

// NewFee registers a neighborhood with its delivery fee.
func NewFee(name string, fee decimal.Decimal) (*Fee, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("neighborhood name")
	}
	if fee.IsNegative() {
		return nil, errs.NewValueIsInvalidError("delivery fee")
	}

	return &Fee{
		name:          name,
		fee:           fee,
		isConstructed: true,
	}, nil
}

// RestoreFee reconstructs a fee entry from persistence.
func RestoreFee(name string, fee decimal.Decimal) (*Fee, error) {
	return NewFee(name, fee)
}

// Validate ensures the Fee was created through a constructor.
func (f *Fee) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFeeIsNotConstructed
	}
	return nil
}

// Name returns the neighborhood name.
func (f *Fee) Name() string {
	return f.name
}

// Fee returns the delivery fee.
func (f *Fee) Fee() decimal.Decimal {
	return f.fee
}
