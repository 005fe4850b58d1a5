// Package establishmentrepo persists marketplace establishment registrations:
// the remote identity, the developer token the sync engine authenticates
// with, and the per-establishment automation flags.
package establishmentrepo

import (
	"frangodahora/internal/core/domain/model/establishment"
)

// EstablishmentDTO represents the database structure for establishment
// registrations. The remote id is unique: one registration per storefront.
type EstablishmentDTO struct {
	ID               int64 `gorm:"primaryKey;autoIncrement"`
	RemoteID         int64 `gorm:"uniqueIndex"`
	DeveloperToken   string
	Name             string
	Active           bool
	AutoCloseStore   bool
	AutoRejectOrders bool
}

// TableName specifies the database table name for establishments.
func (EstablishmentDTO) TableName() string {
	return "establishments"
}

func fromDomain(aggregate *establishment.Establishment) EstablishmentDTO {
	return EstablishmentDTO{
		ID:               aggregate.ID(),
		RemoteID:         aggregate.RemoteID(),
		DeveloperToken:   aggregate.DeveloperToken(),
		Name:             aggregate.Name(),
		Active:           aggregate.IsActive(),
		AutoCloseStore:   aggregate.AutoCloseStore(),
		AutoRejectOrders: aggregate.AutoRejectOrders(),
	}
}

func toDomain(dto EstablishmentDTO) (*establishment.Establishment, error) {
	return establishment.RestoreEstablishment(
		dto.ID,
		dto.RemoteID,
		dto.DeveloperToken,
		dto.Name,
		dto.Active,
		dto.AutoCloseStore,
		dto.AutoRejectOrders,
	)
}
