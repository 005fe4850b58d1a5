package http

import (
	"fmt"
	"strings"
	"time"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// orderDetailsRequest is the wire form of the mutable order attributes.
// Money arrives as floats from the screens and is converted to decimals at
// the boundary.
type orderDetailsRequest struct {
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	Address         string  `json:"address"`
	Neighborhood    string  `json:"neighborhood"`
	Reference       string  `json:"reference"`
	Quantity        float64 `json:"quantity"`
	Chopped         bool    `json:"chopped"`
	UnitPrice       float64 `json:"unit_price"`
	DeliveryFee     float64 `json:"delivery_fee"`
	TotalPrice      float64 `json:"total_price"`
	PaymentMethod   string  `json:"payment_method"`
	Notes           string  `json:"notes"`
	ExpectedMinutes int     `json:"expected_minutes"`
}

func (r orderDetailsRequest) toDomain() (order.Details, error) {
	quantity, err := kernel.QuantityFromUnits(r.Quantity)
	if err != nil {
		return order.Details{}, err
	}

	paymentMethod, err := parsePaymentMethod(r.PaymentMethod)
	if err != nil {
		return order.Details{}, err
	}

	return order.Details{
		Customer: order.Customer{
			Name:  r.CustomerName,
			Phone: r.CustomerPhone,
		},
		Address:      r.Address,
		Neighborhood: r.Neighborhood,
		Reference:    r.Reference,
		Quantity:     quantity,
		Chopped:      r.Chopped,
		Pricing: order.Pricing{
			UnitPrice:   decimal.NewFromFloat(r.UnitPrice),
			DeliveryFee: decimal.NewFromFloat(r.DeliveryFee),
			TotalPrice:  decimal.NewFromFloat(r.TotalPrice),
		},
		PaymentMethod:   paymentMethod,
		Notes:           r.Notes,
		ExpectedMinutes: r.ExpectedMinutes,
	}, nil
}

type createOrderRequest struct {
	orderDetailsRequest

	Day     string `json:"day"`
	Channel string `json:"channel"`
}

type rejectOrderRequest struct {
	Reason string `json:"reason"`
}

type assignRiderRequest struct {
	RiderID int64 `json:"rider_id"`
}

type setStockRequest struct {
	Day      string  `json:"day"`
	Quantity float64 `json:"quantity"`
}

type adjustBagRequest struct {
	RiderName string  `json:"rider_name"`
	Day       string  `json:"day"`
	Delta     float64 `json:"delta"`
}

type reorderRouteRequest struct {
	Day      string  `json:"day"`
	OrderIDs []int64 `json:"order_ids"`
}

type registerEstablishmentRequest struct {
	RemoteID       int64  `json:"remote_id"`
	DeveloperToken string `json:"developer_token"`
	Name           string `json:"name"`
}

type updateEstablishmentRequest struct {
	Active           bool `json:"active"`
	AutoCloseStore   bool `json:"auto_close_store"`
	AutoRejectOrders bool `json:"auto_reject_orders"`
}

type pushDeliveryTimeRequest struct {
	Minutes int `json:"minutes"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// parseDayOrToday reads a "YYYY-MM-DD" value, defaulting to the current day
// when the value is empty. The screens almost always work on today.
func parseDayOrToday(value string) (kernel.Day, error) {
	if value == "" {
		return kernel.NewDay(time.Now()), nil
	}
	return kernel.ParseDay(value)
}

func parseChannel(value string) (order.Channel, error) {
	switch strings.ToLower(value) {
	case "walkin", "walk-in", "counter":
		return order.ChannelWalkIn, nil
	case "phone":
		return order.ChannelPhone, nil
	default:
		return order.ChannelUnknown, fmt.Errorf("unknown sales channel %q", value)
	}
}

func parsePaymentMethod(value string) (order.PaymentMethod, error) {
	switch strings.ToLower(value) {
	case "cash":
		return order.PaymentCash, nil
	case "pix":
		return order.PaymentPix, nil
	case "card":
		return order.PaymentCard, nil
	case "prepaid":
		return order.PaymentPrepaid, nil
	default:
		return order.PaymentUnknown, fmt.Errorf("unknown payment method %q", value)
	}
}
