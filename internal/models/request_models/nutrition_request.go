package request_models

// LogNutritionRequest is a tagged union on LogType. Numeric fields arrive as
// text so the service can distinguish "left empty" from zero.
type LogNutritionRequest struct {
	LogType string `json:"log_type" binding:"required,oneof=food water"`

	FoodName    string `json:"food_name"`
	PortionSize string `json:"portion_size"`
	Calories    string `json:"calories"`
	MealType    string `json:"meal_type"`

	WaterAmountML string `json:"water_amount_ml"`

	Notes string `json:"notes"`
}
