// Package report orchestrates the indicator pipeline across a reporting
// year: validation, both engines, compliance evaluation, reactive rollups
// and the trend classification, producing the AnnualSummary consumed by
// the presentation collaborators.
package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/seg-tools/sso-atlas/pkg/models/domain"
	"github.com/seg-tools/sso-atlas/pkg/services/compliance"
	"github.com/seg-tools/sso-atlas/pkg/services/proactive"
	"github.com/seg-tools/sso-atlas/pkg/services/reactive"
	"github.com/seg-tools/sso-atlas/pkg/services/validator"
)

// trendEpsilon is the dead band, in index points, below which consecutive
// management-index movement counts as stable.
const trendEpsilon = 0.5

var quarterLabels = [4]string{"Q1", "Q2", "Q3", "Q4"}

// Manager is the engine's public entry point. It is a pure function of
// (records, config): recomputing from the same validated input yields an
// identical summary, so concurrent use needs no synchronization.
type Manager struct {
	cfg       domain.Config
	reactive  *reactive.Engine
	proactive *proactive.Engine
}

// NewManager validates the configuration and builds a manager. A negative
// K or goal is fatal for the whole run.
func NewManager(cfg domain.Config) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &Manager{
		cfg:       cfg,
		reactive:  reactive.NewEngine(cfg.K),
		proactive: proactive.NewEngine(),
	}, nil
}

// Evaluate runs the full pipeline over a raw batch. Invalid periods are
// excluded and reported in the validation result; the remaining periods
// proceed. An error is returned only when no period survives validation.
func (m *Manager) Evaluate(records []domain.RawRecord) (domain.AnnualSummary, validator.Result, error) {
	vres := validator.Validate(records)
	if len(vres.Valid) == 0 {
		return domain.AnnualSummary{}, vres, fmt.Errorf("no valid periods in batch (%d rejected)", len(records))
	}

	summary := domain.AnnualSummary{
		Year:      vres.Valid[0].Period.Year,
		InputHash: m.InputHash(records),
	}

	for _, rec := range vres.Valid {
		summary.Periods = append(summary.Periods, m.evaluatePeriod(rec))
	}
	summary.Rollups = m.rollups(vres.Valid)
	summary.Stats = m.stats(vres.Valid, summary.Periods)
	summary.Trend = classifyTrend(summary.Periods)

	return summary, vres, nil
}

func (m *Manager) evaluatePeriod(rec domain.RawRecord) domain.PeriodResult {
	results := m.reactive.Compute(rec)
	results = append(results, m.proactive.Compute(rec)...)

	index := m.proactive.ManagementIndex(rec.Period, results)
	goal, _ := m.cfg.Goal(domain.CodeIGTotal)

	return domain.PeriodResult{
		Period:           rec.Period,
		Results:          results,
		Statuses:         compliance.EvaluateAll(results, m.cfg),
		ManagementIndex:  index,
		ManagementStatus: compliance.Evaluate(index, goal),
	}
}

func (m *Manager) rollups(records []domain.RawRecord) []domain.Rollup {
	var rollups []domain.Rollup
	for q := 1; q <= 4; q++ {
		var group []domain.RawRecord
		for _, rec := range records {
			if rec.Period.Quarter() == q {
				group = append(group, rec)
			}
		}
		if len(group) == 0 {
			continue
		}
		rollups = append(rollups, m.reactive.Rollup(domain.RollupQuarter, quarterLabels[q-1], group))
	}
	rollups = append(rollups, m.reactive.Rollup(domain.RollupAnnual, "YEAR", records))
	return rollups
}

func (m *Manager) stats(records []domain.RawRecord, periods []domain.PeriodResult) domain.Stats {
	var s domain.Stats
	for _, rec := range records {
		s.TotalLesions += rec.TotalLesions()
		s.TotalLostDays += rec.LostDays
		s.TotalHours += rec.EffectiveHours()
		if rec.TotalLesions() == 0 {
			s.PeriodsWithoutLesions++
		}
	}

	n := float64(len(periods))
	for _, p := range periods {
		if r, ok := p.Result(domain.CodeIF); ok {
			s.MeanIF += r.Value / n
		}
		if r, ok := p.Result(domain.CodeIG); ok {
			s.MeanIG += r.Value / n
		}
		if r, ok := p.Result(domain.CodeTR); ok {
			s.MeanTR += r.Value / n
		}
		s.MeanManagementIndex += p.ManagementIndex.Value / n
		if p.ManagementStatus.Meets {
			s.PeriodsMeetingGoal++
		}
	}
	return s
}

// classifyTrend compares the management index of consecutive periods: the
// mean of the deltas decides the direction, with a dead band for stable.
// Fewer than two periods is stable by definition.
func classifyTrend(periods []domain.PeriodResult) domain.Trend {
	if len(periods) < 2 {
		return domain.TrendStable
	}

	var mean float64
	for i := 1; i < len(periods); i++ {
		mean += periods[i].ManagementIndex.Value - periods[i-1].ManagementIndex.Value
	}
	mean /= float64(len(periods) - 1)

	switch {
	case mean > trendEpsilon:
		return domain.TrendImproving
	case mean < -trendEpsilon:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

// InputHash fingerprints the (records, configuration) pair so callers can
// cache summaries by input instead of re-running the pipeline. The hash is
// computed over the validated, chronologically ordered batch.
func (m *Manager) InputHash(records []domain.RawRecord) string {
	vres := validator.Validate(records)

	h := sha256.New()
	fmt.Fprintf(h, "k=%g\n", m.cfg.K)
	for _, code := range append(domain.AllCodes(), domain.CodeIGTotal) {
		if goal, ok := m.cfg.Goal(code); ok {
			fmt.Fprintf(h, "goal:%s=%g:%s\n", code, goal.Value, goal.Direction)
		}
	}
	for _, rec := range vres.Valid {
		writeRecord(h, rec)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func writeRecord(w io.Writer, r domain.RawRecord) {
	fmt.Fprintf(w, "%s|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g|%g\n",
		r.Period,
		r.HoursWorked, r.Workers, r.OvertimeHours,
		r.InjuriesWithLeave, r.InjuriesWithoutLeave, r.OccupationalIllnesses, r.LostDays,
		r.RiskAnalysesExecuted, r.RiskAnalysesProgrammed,
		r.ObservationsPerformed, r.ObservationsProgrammed, r.PeopleConforming, r.PeopleExpected,
		r.DialoguesHeld, r.DialoguesPlanned, r.Attendees, r.AttendeesExpected,
		r.HazardsEliminated, r.HazardsDetected,
		r.WorkersTrained, r.TrainingProgrammed,
		r.StandardsComplied, r.StandardsApplicable,
		r.ActionsImplemented, r.ActionsProposed,
		r.ElementsAudited, r.ElementsTotal,
	)
}
