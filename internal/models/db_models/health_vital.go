package db_models

import (
	"github.com/google/uuid"
)

// HealthVital is a single typed measurement. Blood pressure stores the
// systolic half in Value and the diastolic half in DiastolicValue; every
// other vital type leaves DiastolicValue NULL.
type HealthVital struct {
	BaseModel
	CareTeamID     uuid.UUID `gorm:"type:uuid;index;not null"`
	RecordedBy     uuid.UUID `gorm:"type:uuid;not null"`
	VitalType      string    `gorm:"not null"`
	Value          float64   `gorm:"not null"`
	DiastolicValue *float64
	Unit           string `gorm:"not null"`
	Notes          *string
}
