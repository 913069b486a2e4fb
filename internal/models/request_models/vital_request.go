package request_models

// RecordVitalRequest carries the value as text: blood pressure is entered as
// "systolic/diastolic", everything else as a single number. Empty Unit means
// "use the type's default unit".
type RecordVitalRequest struct {
	VitalType string `json:"vital_type" binding:"required"`
	Value     string `json:"value" binding:"required"`
	Unit      string `json:"unit"`
	Notes     string `json:"notes"`
}
