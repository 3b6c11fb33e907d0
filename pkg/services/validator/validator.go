// Package validator checks a raw record batch before it reaches the
// engines. Validation is per period: an invalid record excludes only its
// own period from downstream computation, the rest proceed.
package validator

import (
	"fmt"
	"sort"

	"github.com/seg-tools/sso-atlas/pkg/models/domain"
)

// Rule names the constraint a field violated.
type Rule string

const (
	RuleInvalidPeriod   Rule = "invalid_period"
	RuleDuplicatePeriod Rule = "duplicate_period"
	RuleNonNegative     Rule = "non_negative"
	RuleZeroHours       Rule = "zero_hours"
)

// FieldError identifies the offending period, field and rule so the caller
// can fix the source data.
type FieldError struct {
	Period  domain.Period
	Field   string
	Rule    Rule
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Period, e.Field, e.Message)
}

// Result separates the records that may proceed from the per-period errors
// and warnings found along the way. Valid records are sorted
// chronologically.
type Result struct {
	Valid    []domain.RawRecord
	Errors   []FieldError
	Warnings []FieldError
}

// field pairs a record field with its accessor so every count is checked
// uniformly.
type field struct {
	name string
	get  func(domain.RawRecord) float64
}

var countFields = []field{
	{"hours_worked", func(r domain.RawRecord) float64 { return r.HoursWorked }},
	{"workers", func(r domain.RawRecord) float64 { return r.Workers }},
	{"overtime_hours", func(r domain.RawRecord) float64 { return r.OvertimeHours }},
	{"injuries_with_leave", func(r domain.RawRecord) float64 { return r.InjuriesWithLeave }},
	{"injuries_without_leave", func(r domain.RawRecord) float64 { return r.InjuriesWithoutLeave }},
	{"occupational_illnesses", func(r domain.RawRecord) float64 { return r.OccupationalIllnesses }},
	{"lost_days", func(r domain.RawRecord) float64 { return r.LostDays }},
	{"risk_analyses_executed", func(r domain.RawRecord) float64 { return r.RiskAnalysesExecuted }},
	{"risk_analyses_programmed", func(r domain.RawRecord) float64 { return r.RiskAnalysesProgrammed }},
	{"observations_performed", func(r domain.RawRecord) float64 { return r.ObservationsPerformed }},
	{"observations_programmed", func(r domain.RawRecord) float64 { return r.ObservationsProgrammed }},
	{"people_conforming", func(r domain.RawRecord) float64 { return r.PeopleConforming }},
	{"people_expected", func(r domain.RawRecord) float64 { return r.PeopleExpected }},
	{"dialogues_held", func(r domain.RawRecord) float64 { return r.DialoguesHeld }},
	{"dialogues_planned", func(r domain.RawRecord) float64 { return r.DialoguesPlanned }},
	{"attendees", func(r domain.RawRecord) float64 { return r.Attendees }},
	{"attendees_expected", func(r domain.RawRecord) float64 { return r.AttendeesExpected }},
	{"hazards_eliminated", func(r domain.RawRecord) float64 { return r.HazardsEliminated }},
	{"hazards_detected", func(r domain.RawRecord) float64 { return r.HazardsDetected }},
	{"workers_trained", func(r domain.RawRecord) float64 { return r.WorkersTrained }},
	{"training_programmed", func(r domain.RawRecord) float64 { return r.TrainingProgrammed }},
	{"standards_complied", func(r domain.RawRecord) float64 { return r.StandardsComplied }},
	{"standards_applicable", func(r domain.RawRecord) float64 { return r.StandardsApplicable }},
	{"actions_implemented", func(r domain.RawRecord) float64 { return r.ActionsImplemented }},
	{"actions_proposed", func(r domain.RawRecord) float64 { return r.ActionsProposed }},
	{"elements_audited", func(r domain.RawRecord) float64 { return r.ElementsAudited }},
	{"elements_total", func(r domain.RawRecord) float64 { return r.ElementsTotal }},
}

// Validate checks every record of the batch. Records with errors are
// excluded from Result.Valid; warnings (such as zero worked hours, which
// leaves IF and IG undefined) do not exclude a record.
func Validate(records []domain.RawRecord) Result {
	var res Result
	seen := make(map[domain.Period]bool, len(records))

	for _, rec := range records {
		errs := checkRecord(rec, seen)
		if len(errs) > 0 {
			res.Errors = append(res.Errors, errs...)
			continue
		}
		seen[rec.Period] = true

		if rec.EffectiveHours() == 0 {
			res.Warnings = append(res.Warnings, FieldError{
				Period:  rec.Period,
				Field:   "hours_worked",
				Rule:    RuleZeroHours,
				Message: "no worked hours reported; frequency and severity will be undefined",
			})
		}
		res.Valid = append(res.Valid, rec)
	}

	sort.Slice(res.Valid, func(i, j int) bool {
		return res.Valid[i].Period.Before(res.Valid[j].Period)
	})
	return res
}

func checkRecord(rec domain.RawRecord, seen map[domain.Period]bool) []FieldError {
	var errs []FieldError

	if !rec.Period.Valid() {
		errs = append(errs, FieldError{
			Period:  rec.Period,
			Field:   "period",
			Rule:    RuleInvalidPeriod,
			Message: fmt.Sprintf("not a valid month/year: %s", rec.Period),
		})
	} else if seen[rec.Period] {
		errs = append(errs, FieldError{
			Period:  rec.Period,
			Field:   "period",
			Rule:    RuleDuplicatePeriod,
			Message: "period appears more than once in the batch",
		})
	}

	for _, f := range countFields {
		if v := f.get(rec); v < 0 {
			errs = append(errs, FieldError{
				Period:  rec.Period,
				Field:   f.name,
				Rule:    RuleNonNegative,
				Message: fmt.Sprintf("negative value %v", v),
			})
		}
	}
	return errs
}
