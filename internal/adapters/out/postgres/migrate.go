package postgres

import (
	"frangodahora/internal/adapters/out/postgres/establishmentrepo"
	"frangodahora/internal/adapters/out/postgres/neighborhoodrepo"
	"frangodahora/internal/adapters/out/postgres/orderrepo"
	"frangodahora/internal/adapters/out/postgres/riderrepo"
	"frangodahora/internal/adapters/out/postgres/stockrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the adapters persist to.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&stockrepo.StockDayDTO{},
		&riderrepo.RiderDTO{},
		&riderrepo.AssignmentDTO{},
		&establishmentrepo.EstablishmentDTO{},
		&neighborhoodrepo.FeeDTO{},
	)
}
