package domain

// StandardMonthlyHours is the reference working time for one worker over a
// month (40 h/week x 4.33 weeks). Used as a fallback when a record does not
// report the hours actually worked.
const StandardMonthlyHours = 173.33

// RawRecord carries one period's raw activity counts. It is owned by the
// caller until it passes validation and is never mutated by the engine.
type RawRecord struct {
	Period Period

	// Incident outcomes.
	HoursWorked           float64
	Workers               float64
	OvertimeHours         float64
	InjuriesWithLeave     float64
	InjuriesWithoutLeave  float64
	OccupationalIllnesses float64
	LostDays              float64

	// Task risk analyses (IART).
	RiskAnalysesExecuted   float64
	RiskAnalysesProgrammed float64

	// Planned observations of substandard actions (OPAS).
	ObservationsPerformed  float64
	ObservationsProgrammed float64
	PeopleConforming       float64
	PeopleExpected         float64

	// Periodic safety dialogues (IDPS).
	DialoguesHeld     float64
	DialoguesPlanned  float64
	Attendees         float64
	AttendeesExpected float64

	// Safety demands (IDS).
	HazardsEliminated float64
	HazardsDetected   float64

	// Safety training (IENTS).
	WorkersTrained     float64
	TrainingProgrammed float64

	// Standardized service orders (IOSEA).
	StandardsComplied   float64
	StandardsApplicable float64

	// Corrective actions from incident investigations (ICAI).
	ActionsImplemented float64
	ActionsProposed    float64

	// Internal audit coverage (IEF).
	ElementsAudited float64
	ElementsTotal   float64
}

// TotalLesions sums injuries with leave, injuries without leave and
// occupational illnesses for the period.
func (r RawRecord) TotalLesions() float64 {
	return r.InjuriesWithLeave + r.InjuriesWithoutLeave + r.OccupationalIllnesses
}

// EffectiveHours returns the reported hours worked, falling back to the
// standard estimate (workers x StandardMonthlyHours plus overtime) when no
// hours were reported.
func (r RawRecord) EffectiveHours() float64 {
	if r.HoursWorked > 0 {
		return r.HoursWorked
	}
	if r.Workers > 0 {
		return r.Workers*StandardMonthlyHours + r.OvertimeHours
	}
	return 0
}
