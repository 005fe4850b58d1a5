package order

import (
	"fmt"

	"frangodahora/internal/pkg/errs"
)

// PaymentMethod enumerates how an order is paid.
type PaymentMethod int

const (
	PaymentUnknown PaymentMethod = iota

	// PaymentCash is settled in cash on delivery.
	PaymentCash

	// PaymentPix is settled via an instant bank transfer.
	PaymentPix

	// PaymentCard is settled with a card at the door.
	PaymentCard

	// PaymentPrepaid was already settled online, typically through the
	// marketplace.
	PaymentPrepaid
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentUnknown: "Unknown",
		PaymentCash:    "Cash",
		PaymentPix:     "Pix",
		PaymentCard:    "Card",
		PaymentPrepaid: "Prepaid",
	}
}

// Validate checks that the PaymentMethod is one of the defined methods.
func (p PaymentMethod) Validate() error {
	if p == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not a valid payment method", p))
	}
	if _, ok := getPaymentMethodStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// String returns the human-readable name of the payment method.
func (p PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[p]; ok {
		return s
	}
	return "Unknown"
}

// Channel enumerates where a sale originated.
type Channel int

const (
	ChannelUnknown Channel = iota

	// ChannelWalkIn is a sale made at the counter.
	ChannelWalkIn

	// ChannelMarketplace is a sale imported from the marketplace.
	ChannelMarketplace

	// ChannelPhone is a sale taken over the phone.
	ChannelPhone
)

func getChannelStrings() map[Channel]string {
	return map[Channel]string{
		ChannelUnknown:     "Unknown",
		ChannelWalkIn:      "WalkIn",
		ChannelMarketplace: "Marketplace",
		ChannelPhone:       "Phone",
	}
}

// Validate checks that the Channel is one of the defined sales channels.
func (c Channel) Validate() error {
	if c == ChannelUnknown {
		return errs.NewValueIsInvalidErrorWithCause("sales channel", fmt.Errorf("%d is not a valid sales channel", c))
	}
	if _, ok := getChannelStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("sales channel", fmt.Errorf("%d is not a valid sales channel", c))
	}
	return nil
}

// String returns the human-readable name of the channel.
func (c Channel) String() string {
	if s, ok := getChannelStrings()[c]; ok {
		return s
	}
	return "Unknown"
}
