// Package neighborhoodrepo persists the delivery-fee table, keyed by
// neighborhood name. The intake flow upserts a fee entry whenever an order
// arrives from a neighborhood it has not seen before.
package neighborhoodrepo

import (
	"frangodahora/internal/core/domain/model/neighborhood"

	"github.com/shopspring/decimal"
)

// FeeDTO represents one neighborhood's delivery fee.
type FeeDTO struct {
	Name string          `gorm:"primaryKey"`
	Fee  decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for delivery fees.
func (FeeDTO) TableName() string {
	return "neighborhood_fees"
}

func fromDomain(fee *neighborhood.Fee) FeeDTO {
	return FeeDTO{
		Name: fee.Name(),
		Fee:  fee.Fee(),
	}
}

func toDomain(dto FeeDTO) (*neighborhood.Fee, error) {
	return neighborhood.RestoreFee(dto.Name, dto.Fee)
}
