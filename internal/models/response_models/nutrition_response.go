package response_models

type NutritionLogResponse struct {
	ID         string `json:"id"`
	CareTeamID string `json:"care_team_id"`
	LoggedBy   string `json:"logged_by"`
	LogType    string `json:"log_type"`

	FoodName    *string `json:"food_name,omitempty"`
	PortionSize *string `json:"portion_size,omitempty"`
	Calories    *int    `json:"calories,omitempty"`
	MealType    *string `json:"meal_type,omitempty"`

	WaterAmountML *int `json:"water_amount_ml,omitempty"`

	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
}
