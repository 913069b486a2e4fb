package db_models

import (
	"github.com/google/uuid"
)

const (
	LogTypeFood  = "food"
	LogTypeWater = "water"
)

// NutritionLog holds exactly one of the food or water field groups, selected
// by LogType. The inactive group's columns stay NULL. Numeric fields are
// pointers so an empty input maps to NULL rather than zero.
type NutritionLog struct {
	BaseModel
	CareTeamID uuid.UUID `gorm:"type:uuid;index;not null"`
	LoggedBy   uuid.UUID `gorm:"type:uuid;not null"`
	LogType    string    `gorm:"not null"`

	FoodName    *string
	PortionSize *string
	Calories    *int
	MealType    *string

	WaterAmountML *int

	Notes *string
}
