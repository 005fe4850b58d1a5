// Package riderrepo persists riders and their daily bag assignments. Rider
// names carry a unique index because the daily operation flow looks riders up
// by name and registers unknown ones on the fly.
package riderrepo

import (
	"time"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/rider"
)

// RiderDTO represents the database structure for riders.
type RiderDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for riders.
func (RiderDTO) TableName() string {
	return "riders"
}

// AssignmentDTO represents one rider's bag allotment for one business day.
// The rider/day pair is the composite primary key.
type AssignmentDTO struct {
	RiderID int64     `gorm:"primaryKey;autoIncrement:false"`
	Day     time.Time `gorm:"type:date;primaryKey"`
	Bag     float64
}

// TableName specifies the database table name for bag assignments.
func (AssignmentDTO) TableName() string {
	return "rider_assignments"
}

func riderFromDomain(aggregate *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:   aggregate.ID(),
		Name: aggregate.Name(),
	}
}

func riderToDomain(dto RiderDTO) (*rider.Rider, error) {
	return rider.RestoreRider(dto.ID, dto.Name)
}

func assignmentFromDomain(assignment *rider.DailyAssignment) AssignmentDTO {
	return AssignmentDTO{
		RiderID: assignment.RiderID(),
		Day:     assignment.Day().Time(),
		Bag:     assignment.Bag(),
	}
}

func assignmentToDomain(dto AssignmentDTO) (*rider.DailyAssignment, error) {
	return rider.RestoreDailyAssignment(dto.RiderID, kernel.NewDay(dto.Day), dto.Bag)
}
