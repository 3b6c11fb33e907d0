package store

import (
	"time"

	"github.com/seg-tools/sso-atlas/pkg/models/domain"
)

// ActivityRecord is the persisted shape of one period's raw counts. It is
// serialized to JSON in the payload column; year and month are kept as
// dedicated columns for querying.
type ActivityRecord struct {
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

// FromDomain converts a domain record into its persisted shape.
func FromDomain(r domain.RawRecord) ActivityRecord {
	return ActivityRecord{
		HoursWorked:            r.HoursWorked,
		Workers:                r.Workers,
		OvertimeHours:          r.OvertimeHours,
		InjuriesWithLeave:      r.InjuriesWithLeave,
		InjuriesWithoutLeave:   r.InjuriesWithoutLeave,
		OccupationalIllnesses:  r.OccupationalIllnesses,
		LostDays:               r.LostDays,
		RiskAnalysesExecuted:   r.RiskAnalysesExecuted,
		RiskAnalysesProgrammed: r.RiskAnalysesProgrammed,
		ObservationsPerformed:  r.ObservationsPerformed,
		ObservationsProgrammed: r.ObservationsProgrammed,
		PeopleConforming:       r.PeopleConforming,
		PeopleExpected:         r.PeopleExpected,
		DialoguesHeld:          r.DialoguesHeld,
		DialoguesPlanned:       r.DialoguesPlanned,
		Attendees:              r.Attendees,
		AttendeesExpected:      r.AttendeesExpected,
		HazardsEliminated:      r.HazardsEliminated,
		HazardsDetected:        r.HazardsDetected,
		WorkersTrained:         r.WorkersTrained,
		TrainingProgrammed:     r.TrainingProgrammed,
		StandardsComplied:      r.StandardsComplied,
		StandardsApplicable:    r.StandardsApplicable,
		ActionsImplemented:     r.ActionsImplemented,
		ActionsProposed:        r.ActionsProposed,
		ElementsAudited:        r.ElementsAudited,
		ElementsTotal:          r.ElementsTotal,
	}
}

// ToDomain rebuilds the domain record for the given period.
func (a ActivityRecord) ToDomain(year int, month time.Month) domain.RawRecord {
	return domain.RawRecord{
		Period:                 domain.Period{Year: year, Month: month},
		HoursWorked:            a.HoursWorked,
		Workers:                a.Workers,
		OvertimeHours:          a.OvertimeHours,
		InjuriesWithLeave:      a.InjuriesWithLeave,
		InjuriesWithoutLeave:   a.InjuriesWithoutLeave,
		OccupationalIllnesses:  a.OccupationalIllnesses,
		LostDays:               a.LostDays,
		RiskAnalysesExecuted:   a.RiskAnalysesExecuted,
		RiskAnalysesProgrammed: a.RiskAnalysesProgrammed,
		ObservationsPerformed:  a.ObservationsPerformed,
		ObservationsProgrammed: a.ObservationsProgrammed,
		PeopleConforming:       a.PeopleConforming,
		PeopleExpected:         a.PeopleExpected,
		DialoguesHeld:          a.DialoguesHeld,
		DialoguesPlanned:       a.DialoguesPlanned,
		Attendees:              a.Attendees,
		AttendeesExpected:      a.AttendeesExpected,
		HazardsEliminated:      a.HazardsEliminated,
		HazardsDetected:        a.HazardsDetected,
		WorkersTrained:         a.WorkersTrained,
		TrainingProgrammed:     a.TrainingProgrammed,
		StandardsComplied:      a.StandardsComplied,
		StandardsApplicable:    a.StandardsApplicable,
		ActionsImplemented:     a.ActionsImplemented,
		ActionsProposed:        a.ActionsProposed,
		ElementsAudited:        a.ElementsAudited,
		ElementsTotal:          a.ElementsTotal,
	}
}
