package domain

// EmergencyProcedure is a stored first-response procedure.
type EmergencyProcedure struct {
	ID              int64
	EmergencyType   string
	Severity        int
	ImmediateAction string
	Steps           []string
	Resources       []string
	PreventionTips  string
}

// VitalSigns holds optional measurements. Nil fields are not evaluated.
type VitalSigns struct {
	HeartRate     *int
	BreathingRate *int
	Temperature   *float64
}
