package response_models

type HealthVitalResponse struct {
	ID             string   `json:"id"`
	CareTeamID     string   `json:"care_team_id"`
	RecordedBy     string   `json:"recorded_by"`
	VitalType      string   `json:"vital_type"`
	Value          float64  `json:"value"`
	DiastolicValue *float64 `json:"diastolic_value,omitempty"`
	Unit           string   `json:"unit"`
	Notes          *string  `json:"notes,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

type VitalTypeResponse struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Units       []string `json:"units"`
	DefaultUnit string   `json:"default_unit"`
}
