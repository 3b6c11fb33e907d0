package api

// MonthRecord is one month of raw activity counts as submitted by a client
// or read from an input file.
type MonthRecord struct {
	Month                 int     `json:"month"`
	HoursWorked           float64 `json:"hours_worked"`
	Workers               float64 `json:"workers"`
	OvertimeHours         float64 `json:"overtime_hours"`
	InjuriesWithLeave     float64 `json:"injuries_with_leave"`
	InjuriesWithoutLeave  float64 `json:"injuries_without_leave"`
	OccupationalIllnesses float64 `json:"occupational_illnesses"`
	LostDays              float64 `json:"lost_days"`

	RiskAnalysesExecuted   float64 `json:"risk_analyses_executed"`
	RiskAnalysesProgrammed float64 `json:"risk_analyses_programmed"`
	ObservationsPerformed  float64 `json:"observations_performed"`
	ObservationsProgrammed float64 `json:"observations_programmed"`
	PeopleConforming       float64 `json:"people_conforming"`
	PeopleExpected         float64 `json:"people_expected"`
	DialoguesHeld          float64 `json:"dialogues_held"`
	DialoguesPlanned       float64 `json:"dialogues_planned"`
	Attendees              float64 `json:"attendees"`
	AttendeesExpected      float64 `json:"attendees_expected"`
	HazardsEliminated      float64 `json:"hazards_eliminated"`
	HazardsDetected        float64 `json:"hazards_detected"`
	WorkersTrained         float64 `json:"workers_trained"`
	TrainingProgrammed     float64 `json:"training_programmed"`
	StandardsComplied      float64 `json:"standards_complied"`
	StandardsApplicable    float64 `json:"standards_applicable"`
	ActionsImplemented     float64 `json:"actions_implemented"`
	ActionsProposed        float64 `json:"actions_proposed"`
	ElementsAudited        float64 `json:"elements_audited"`
	ElementsTotal          float64 `json:"elements_total"`
}

// RecordBatch is one reporting year's worth of monthly records.
type RecordBatch struct {
	Year   int           `json:"year"`
	Months []MonthRecord `json:"months"`
}
