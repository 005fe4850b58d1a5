// Package stockrepo persists the daily stock ledger entries. One row per
// business day, holding only the staff-entered initial quantity; consumption
// is derived from the order store, never stored here.
package stockrepo

import (
	"time"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/stock"
)

// StockDayDTO represents the database structure for one day's stock entry.
// The day itself is the primary key.
type StockDayDTO struct {
	Day     time.Time `gorm:"type:date;primaryKey"`
	Initial float64
}

// TableName specifies the database table name for stock entries.
func (StockDayDTO) TableName() string {
	return "stock_days"
}

// fromDomain converts a stock entry to its database representation.
func fromDomain(entry *stock.StockDay) StockDayDTO {
	return StockDayDTO{
		Day:     entry.Day().Time(),
		Initial: entry.Initial(),
	}
}

// toDomain converts a database row to a stock entry.
func toDomain(dto StockDayDTO) (*stock.StockDay, error) {
	return stock.RestoreStockDay(kernel.NewDay(dto.Day), dto.Initial)
}
