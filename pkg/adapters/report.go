package adapters

import (
	"time"

	"github.com/seg-tools/sso-atlas/pkg/models/api"
	"github.com/seg-tools/sso-atlas/pkg/models/domain"
)

func MapIndicatorResultDomainToApi(r domain.IndicatorResult) api.IndicatorResult {
	return api.IndicatorResult{
		Code:   string(r.Code),
		Period: r.Period.String(),
		Value:  r.Value,
		Unit:   r.Unit,
		Flag:   string(r.Flag),
	}
}

func MapComplianceStatusDomainToApi(s domain.ComplianceStatus) api.ComplianceStatus {
	return api.ComplianceStatus{
		Code:   string(s.Code),
		Period: s.Period.String(),
		Meets:  s.Meets,
		Goal:   s.Goal,
		Margin: s.Margin,
	}
}

func MapPeriodResultDomainToApi(p domain.PeriodResult) api.PeriodSummary {
	summary := api.PeriodSummary{
		Period:           p.Period.String(),
		Results:          []api.IndicatorResult{},
		Statuses:         []api.ComplianceStatus{},
		ManagementIndex:  MapIndicatorResultDomainToApi(p.ManagementIndex),
		ManagementStatus: MapComplianceStatusDomainToApi(p.ManagementStatus),
	}
	for _, r := range p.Results {
		summary.Results = append(summary.Results, MapIndicatorResultDomainToApi(r))
	}
	for _, s := range p.Statuses {
		summary.Statuses = append(summary.Statuses, MapComplianceStatusDomainToApi(s))
	}
	return summary
}

func MapRollupDomainToApi(r domain.Rollup) api.Rollup {
	return api.Rollup{
		Kind:     string(r.Kind),
		Label:    r.Label,
		Lesions:  r.Lesions,
		LostDays: r.LostDays,
		Hours:    r.Hours,
		IF:       MapIndicatorResultDomainToApi(r.IF),
		IG:       MapIndicatorResultDomainToApi(r.IG),
		TR:       MapIndicatorResultDomainToApi(r.TR),
	}
}

func MapAnnualSummaryDomainToApi(s domain.AnnualSummary) api.AnnualSummary {
	summary := api.AnnualSummary{
		Year:    s.Year,
		Periods: []api.PeriodSummary{},
		Rollups: []api.Rollup{},
		Stats: api.Stats{
			TotalLesions:          s.Stats.TotalLesions,
			TotalLostDays:         s.Stats.TotalLostDays,
			TotalHours:            s.Stats.TotalHours,
			MeanIF:                s.Stats.MeanIF,
			MeanIG:                s.Stats.MeanIG,
			MeanTR:                s.Stats.MeanTR,
			MeanManagementIndex:   s.Stats.MeanManagementIndex,
			PeriodsMeetingGoal:    s.Stats.PeriodsMeetingGoal,
			PeriodsWithoutLesions: s.Stats.PeriodsWithoutLesions,
		},
		Trend:     string(s.Trend),
		InputHash: s.InputHash,
	}
	for _, p := range s.Periods {
		summary.Periods = append(summary.Periods, MapPeriodResultDomainToApi(p))
	}
	for _, r := range s.Rollups {
		summary.Rollups = append(summary.Rollups, MapRollupDomainToApi(r))
	}
	return summary
}

// MapRecordBatchApiToDomain expands an input batch into domain records.
// Month numbers are taken as given; the validator decides what is usable.
func MapRecordBatchApiToDomain(batch api.RecordBatch) []domain.RawRecord {
	records := make([]domain.RawRecord, 0, len(batch.Months))
	for _, m := range batch.Months {
		records = append(records, MapMonthRecordApiToDomain(batch.Year, m))
	}
	return records
}

func MapMonthRecordApiToDomain(year int, m api.MonthRecord) domain.RawRecord {
	return domain.RawRecord{
		Period:                 domain.Period{Year: year, Month: time.Month(m.Month)},
		HoursWorked:            m.HoursWorked,
		Workers:                m.Workers,
		OvertimeHours:          m.OvertimeHours,
		InjuriesWithLeave:      m.InjuriesWithLeave,
		InjuriesWithoutLeave:   m.InjuriesWithoutLeave,
		OccupationalIllnesses:  m.OccupationalIllnesses,
		LostDays:               m.LostDays,
		RiskAnalysesExecuted:   m.RiskAnalysesExecuted,
		RiskAnalysesProgrammed: m.RiskAnalysesProgrammed,
		ObservationsPerformed:  m.ObservationsPerformed,
		ObservationsProgrammed: m.ObservationsProgrammed,
		PeopleConforming:       m.PeopleConforming,
		PeopleExpected:         m.PeopleExpected,
		DialoguesHeld:          m.DialoguesHeld,
		DialoguesPlanned:       m.DialoguesPlanned,
		Attendees:              m.Attendees,
		AttendeesExpected:      m.AttendeesExpected,
		HazardsEliminated:      m.HazardsEliminated,
		HazardsDetected:        m.HazardsDetected,
		WorkersTrained:         m.WorkersTrained,
		TrainingProgrammed:     m.TrainingProgrammed,
		StandardsComplied:      m.StandardsComplied,
		StandardsApplicable:    m.StandardsApplicable,
		ActionsImplemented:     m.ActionsImplemented,
		ActionsProposed:        m.ActionsProposed,
		ElementsAudited:        m.ElementsAudited,
		ElementsTotal:          m.ElementsTotal,
	}
}

// MapRawRecordDomainToApi is the inverse of MapMonthRecordApiToDomain,
// used when writing template files.
func MapRawRecordDomainToApi(r domain.RawRecord) api.MonthRecord {
	return api.MonthRecord{
		Month:                  int(r.Period.Month),
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
