package db_models

import (
	"github.com/google/uuid"
)

type CareTeam struct {
	BaseModel
	Name              string `gorm:"not null"`
	Description       *string
	CareRecipientName string    `gorm:"not null"`
	CreatedBy         uuid.UUID `gorm:"type:uuid;not null"`

	Members []CareTeamMember
}

// CareTeamMember links a profile to a team. UserID holds the profile ID.
type CareTeamMember struct {
	BaseModel
	CareTeamID uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Role       string    `gorm:"not null"`
}
