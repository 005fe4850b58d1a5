// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and rows.
package orderrepo

import (
	"time"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The external id carries a unique index so marketplace imports stay
// idempotent at the storage level, and day/status/rider_id are indexed for
// the board and route queries.
type OrderDTO struct {
	ID                      int64  `gorm:"primaryKey;autoIncrement"`
	ExternalID              *int64 `gorm:"uniqueIndex"`
	ExternalEstablishmentID *int64
	Day                     time.Time `gorm:"type:date;index"`
	PlacedAt                time.Time
	Channel                 int
	Status                  int `gorm:"index"`
	CustomerName            string
	CustomerPhone           string
	Address                 string
	Neighborhood            string
	Reference               string
	Quantity                float64
	Chopped                 bool
	UnitPrice               decimal.Decimal `gorm:"type:numeric"`
	DeliveryFee             decimal.Decimal `gorm:"type:numeric"`
	TotalPrice              decimal.Decimal `gorm:"type:numeric"`
	PaymentMethod           int
	Notes                   string
	ExpectedMinutes         int
	RiderID                 *int64 `gorm:"index"`
	RoutePosition           int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()

	return OrderDTO{
		ID:                      aggregate.ID(),
		ExternalID:              aggregate.ExternalID(),
		ExternalEstablishmentID: aggregate.ExternalEstablishmentID(),
		Day:                     aggregate.Day().Time(),
		PlacedAt:                aggregate.PlacedAt(),
		Channel:                 int(aggregate.Channel()),
		Status:                  int(aggregate.Status()),
		CustomerName:            details.Customer.Name,
		CustomerPhone:           details.Customer.Phone,
		Address:                 details.Address,
		Neighborhood:            details.Neighborhood,
		Reference:               details.Reference,
		Quantity:                details.Quantity.Units(),
		Chopped:                 details.Chopped,
		UnitPrice:               details.Pricing.UnitPrice,
		DeliveryFee:             details.Pricing.DeliveryFee,
		TotalPrice:              details.Pricing.TotalPrice,
		PaymentMethod:           int(details.PaymentMethod),
		Notes:                   details.Notes,
		ExpectedMinutes:         details.ExpectedMinutes,
		RiderID:                 aggregate.Rider(),
		RoutePosition:           aggregate.RoutePosition(),
	}
}

// toDomain converts a database row to an order aggregate, reconstructing the
// complete state through RestoreOrder so the status/rider consistency rules
// are revalidated on the way out of storage.
func toDomain(dto OrderDTO) (*order.Order, error) {
	quantity, err := kernel.QuantityFromUnits(dto.Quantity)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		Customer: order.Customer{
			Name:  dto.CustomerName,
			Phone: dto.CustomerPhone,
		},
		Address:      dto.Address,
		Neighborhood: dto.Neighborhood,
		Reference:    dto.Reference,
		Quantity:     quantity,
		Chopped:      dto.Chopped,
		Pricing: order.Pricing{
			UnitPrice:   dto.UnitPrice,
			DeliveryFee: dto.DeliveryFee,
			TotalPrice:  dto.TotalPrice,
		},
		PaymentMethod:   order.PaymentMethod(dto.PaymentMethod),
		Notes:           dto.Notes,
		ExpectedMinutes: dto.ExpectedMinutes,
	}

	return order.RestoreOrder(
		dto.ID,
		dto.ExternalID,
		dto.ExternalEstablishmentID,
		kernel.NewDay(dto.Day),
		dto.PlacedAt,
		order.Channel(dto.Channel),
		details,
		order.Status(dto.Status),
		dto.RiderID,
		dto.RoutePosition,
	)
}
