package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Trip struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TripName  string    `gorm:"size:255;not null"`
	City      string    `gorm:"size:100"`
	State     string    `gorm:"size:100"`
	Country   string    `gorm:"size:100;default:India"`
	StartDate datatypes.Date
	EndDate   datatypes.Date

	Sections []ItinerarySection `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}

// ItinerarySection is one dated block of a trip plan. A trip's sections are
// always rewritten as a whole.
type ItinerarySection struct {
	BaseModel
	TripID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	SectionDate datatypes.Date `gorm:"index"`
	Budget      *float64       `gorm:"type:decimal(10,2)"`
	Details     string         `gorm:"type:text"`
}
