package db_models

import (
	"github.com/google/uuid"
)

// Profile is the application-level user record. UserID is the identity the
// external session provider issues; every user-attributed write stores the
// profile ID, never the session identity.
type Profile struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	FullName string
	Email    string `gorm:"uniqueIndex"`

	Memberships []CareTeamMember `gorm:"foreignKey:UserID;references:ID"`
}
