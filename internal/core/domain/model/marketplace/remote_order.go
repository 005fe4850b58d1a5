// Package marketplace models the marketplace's native order payload and the
// heuristics that translate it into local order attributes.
//
// The JSON field names follow the marketplace wire format so the same types
// serve both the polling client and the inbound webhook.
package marketplace

import (
	"strings"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// StapleProductKeyword is the product-name substring that identifies line
// items of the staple product in a remote order.
const StapleProductKeyword = "frango"

// PendingOrder is one entry of the marketplace's pending-order listing.
// Only the order code is relevant; details are fetched separately.
type PendingOrder struct {
	Code int64 `json:"cod_pedido"`
}

// RemoteItem is one line item of a remote order.
type RemoteItem struct {
	Product  string  `json:"produto"`
	Quantity float64 `json:"quantidade"`
}

// RemoteCustomer is the buyer block of a remote order.
type RemoteCustomer struct {
	Name  string `json:"nome"`
	Phone string `json:"tel1"`
}

// RemoteAddress is the delivery destination block of a remote order.
type RemoteAddress struct {
	Street       string `json:"rua"`
	Number       string `json:"num"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
}

// RemoteOrder is the full detail payload of one marketplace order, in the
// marketplace's native shape.
type RemoteOrder struct {
	Code            int64           `json:"cod_pedido"`
	EstablishmentID int64           `json:"id_estabelecimento"`
	Total           float64         `json:"valor_total"`
	DeliveryFee     float64         `json:"taxa_entrega"`
	PaymentMethod   string          `json:"forma_pagamento"`
	FulfillmentType string          `json:"tipo_entrega"`
	MaxMinutes      int             `json:"prazo_max"`
	Notes           string          `json:"observacao"`
	Customer        *RemoteCustomer `json:"usuario"`
	Address         RemoteAddress   `json:"endereco"`
	Items           []RemoteItem    `json:"produtos"`
}

// StapleQuantity derives the staple units a remote order consumes: the sum
// of line items whose product name contains the staple keyword. When no item
// matches, it falls back to summing all line items.
//
// The fallback is a documented ambiguity, not a bug: an order composed
// entirely of unmatched items (for example renamed products) is assumed to
// be all staple product rather than consuming nothing. What should happen
// when several distinct unmatched products appear is an open product
// question; until answered, the original fallback behavior is kept.
func StapleQuantity(items []RemoteItem) float64 {
	var matched float64
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Product), StapleProductKeyword) {
			matched += item.Quantity
		}
	}
	if matched > 0 {
		return matched
	}

	var all float64
	for _, item := range items {
		all += item.Quantity
	}
	return all
}

// MapPaymentMethod translates the marketplace's free-form payment string to
// the local enumeration by substring matching. Unknown strings default to
// Prepaid, because marketplace orders not matched to an at-the-door method
// were settled online.
func MapPaymentMethod(remote string) order.PaymentMethod {
	lower := strings.ToLower(remote)
	switch {
	case strings.Contains(lower, "dinheiro"):
		return order.PaymentCash
	case strings.Contains(lower, "pix"):
		return order.PaymentPix
	case strings.Contains(lower, "cartão"), strings.Contains(lower, "cartao"):
		return order.PaymentCard
	default:
		return order.PaymentPrepaid
	}
}

// IsPickup reports whether the remote fulfillment type means the customer
// collects the order instead of having it delivered.
func IsPickup(fulfillmentType string) bool {
	return strings.EqualFold(strings.TrimSpace(fulfillmentType), "retirada")
}

// CustomerName returns the buyer's name, or "N/A" when the payload omits
// the customer block.
func (o RemoteOrder) CustomerName() string {
	if o.Customer == nil || o.Customer.Name == "" {
		return "N/A"
	}
	return o.Customer.Name
}

// CustomerPhone returns the buyer's phone with every non-digit stripped, or
// "N/A" when absent.
func (o RemoteOrder) CustomerPhone() string {
	if o.Customer == nil || o.Customer.Phone == "" {
		return "N/A"
	}

	var digits strings.Builder
	for _, r := range o.Customer.Phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return "N/A"
	}
	return digits.String()
}

// DeliveryAddress renders the destination as a single line, or the pickup
// sentinel for pickup orders.
func (o RemoteOrder) DeliveryAddress() string {
	if IsPickup(o.FulfillmentType) {
		return order.PickupAddress
	}

	address := o.Address.Street + ", " + o.Address.Number
	if o.Address.Complement != "" {
		address += " " + o.Address.Complement
	}
	return strings.TrimSpace(address)
}

// Neighborhood returns the destination neighborhood; empty for pickups.
func (o RemoteOrder) Neighborhood() string {
	if IsPickup(o.FulfillmentType) {
		return ""
	}
	return o.Address.Neighborhood
}

// ToOrderDetails folds the remote payload into local order attributes.
// Returns an error when the derived staple quantity is not positive, which
// happens only for payloads without line items.
func (o RemoteOrder) ToOrderDetails() (order.Details, error) {
	quantity, err := kernel.QuantityFromUnits(StapleQuantity(o.Items))
	if err != nil {
		return order.Details{}, err
	}

	return order.Details{
		Customer: order.Customer{
			Name:  o.CustomerName(),
			Phone: o.CustomerPhone(),
		},
		Address:      o.DeliveryAddress(),
		Neighborhood: o.Neighborhood(),
		Quantity:     quantity,
		Pricing: order.Pricing{
			DeliveryFee: decimal.NewFromFloat(o.DeliveryFee),
			TotalPrice:  decimal.NewFromFloat(o.Total),
		},
		PaymentMethod:   MapPaymentMethod(o.PaymentMethod),
		Notes:           o.Notes,
		ExpectedMinutes: o.MaxMinutes,
	}, nil
}
