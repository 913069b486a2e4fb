package services

const (
	VitalBloodPressure    = "blood_pressure"
	VitalHeartRate        = "heart_rate"
	VitalTemperature      = "temperature"
	VitalWeight           = "weight"
	VitalBloodSugar       = "blood_sugar"
	VitalOxygenSaturation = "oxygen_saturation"
)

// VitalType declares the ordered unit list for a measurement type. The first
// unit is the default a client gets when it leaves the unit blank.
type VitalType struct {
	Key   string
	Label string
	Units []string
}

var vitalCatalog = []VitalType{
	{Key: VitalBloodPressure, Label: "Blood Pressure", Units: []string{"mmHg"}},
	{Key: VitalHeartRate, Label: "Heart Rate", Units: []string{"bpm"}},
	{Key: VitalTemperature, Label: "Temperature", Units: []string{"°F", "°C"}},
	{Key: VitalWeight, Label: "Weight", Units: []string{"lbs", "kg"}},
	{Key: VitalBloodSugar, Label: "Blood Sugar", Units: []string{"mg/dL", "mmol/L"}},
	{Key: VitalOxygenSaturation, Label: "Oxygen Saturation", Units: []string{"%"}},
}

func LookupVitalType(key string) (VitalType, bool) {
	for _, vt := range vitalCatalog {
		if vt.Key == key {
			return vt, true
		}
	}
	return VitalType{}, false
}

func VitalTypes() []VitalType {
	out := make([]VitalType, len(vitalCatalog))
	copy(out, vitalCatalog)
	return out
}

func (v VitalType) DefaultUnit() string {
	return v.Units[0]
}

func (v VitalType) UnitAllowed(unit string) bool {
	for _, u := range v.Units {
		if u == unit {
			return true
		}
	}
	return false
}
