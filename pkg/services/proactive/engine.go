// Package proactive computes the prevention-activity indicators of
// IESS CD 513 and the weighted management index derived from them.
//
// Each sub-indicator is a percent ratio of an executed count over a
// programmed count; OPAS and IDPS use composite numerators and denominators
// that fold participation quality in. The management index is the weighted
// average of the seven weighted sub-indicators; IEF carries no weight and
// is reported standalone.
package proactive

import (
	"github.com/seg-tools/sso-atlas/pkg/models/domain"
	"github.com/seg-tools/sso-atlas/pkg/services/calc"
)

const UnitPercent = "%"

// SubIndicator maps an indicator code onto the record fields that feed it.
// Every sub-indicator is computed uniformly from this table; there is no
// per-indicator formula code.
type SubIndicator struct {
	Code        domain.Code
	Name        string
	Weight      float64
	Numerator   func(domain.RawRecord) float64
	Denominator func(domain.RawRecord) float64
}

// Table returns the sub-indicator definitions in report order. Weights sum
// to 22; IEF's weight of 0 keeps it out of the management index.
func Table() []SubIndicator {
	return []SubIndicator{
		{
			Code:        domain.CodeIART,
			Name:        "Task risk analyses",
			Weight:      5,
			Numerator:   func(r domain.RawRecord) float64 { return r.RiskAnalysesExecuted },
			Denominator: func(r domain.RawRecord) float64 { return r.RiskAnalysesProgrammed },
		},
		{
			Code:        domain.CodeOPAS,
			Name:        "Planned observations",
			Weight:      3,
			Numerator:   func(r domain.RawRecord) float64 { return r.ObservationsPerformed * r.PeopleConforming },
			Denominator: func(r domain.RawRecord) float64 { return r.ObservationsProgrammed * r.PeopleExpected },
		},
		{
			Code:        domain.CodeIDPS,
			Name:        "Periodic safety dialogues",
			Weight:      2,
			Numerator:   func(r domain.RawRecord) float64 { return r.DialoguesHeld * r.Attendees },
			Denominator: func(r domain.RawRecord) float64 { return r.DialoguesPlanned * r.AttendeesExpected },
		},
		{
			Code:        domain.CodeIDS,
			Name:        "Safety demand",
			Weight:      3,
			Numerator:   func(r domain.RawRecord) float64 { return r.HazardsEliminated },
			Denominator: func(r domain.RawRecord) float64 { return r.HazardsDetected },
		},
		{
			Code:        domain.CodeIENTS,
			Name:        "Safety training",
			Weight:      1,
			Numerator:   func(r domain.RawRecord) float64 { return r.WorkersTrained },
			Denominator: func(r domain.RawRecord) float64 { return r.TrainingProgrammed },
		},
		{
			Code:        domain.CodeIOSEA,
			Name:        "Standardized service orders",
			Weight:      4,
			Numerator:   func(r domain.RawRecord) float64 { return r.StandardsComplied },
			Denominator: func(r domain.RawRecord) float64 { return r.StandardsApplicable },
		},
		{
			Code:        domain.CodeICAI,
			Name:        "Accident/incident control",
			Weight:      4,
			Numerator:   func(r domain.RawRecord) float64 { return r.ActionsImplemented },
			Denominator: func(r domain.RawRecord) float64 { return r.ActionsProposed },
		},
		{
			Code:        domain.CodeIEF,
			Name:        "Audit effectiveness",
			Weight:      0,
			Numerator:   func(r domain.RawRecord) float64 { return r.ElementsAudited },
			Denominator: func(r domain.RawRecord) float64 { return r.ElementsTotal },
		},
	}
}

// Engine computes the eight proactive sub-indicators and the management
// index. Stateless beyond its table; safe for concurrent use.
type Engine struct {
	table []SubIndicator
}

func NewEngine() *Engine {
	return &Engine{table: Table()}
}

// Compute returns the eight sub-indicator results for one record, in table
// order. A sub-indicator with nothing programmed yields 0 flagged
// undefined. Values above 100% (more executed than programmed) are
// preserved, not clamped.
func (e *Engine) Compute(rec domain.RawRecord) []domain.IndicatorResult {
	results := make([]domain.IndicatorResult, 0, len(e.table))
	for _, sub := range e.table {
		v := calc.Percent(sub.Numerator(rec), sub.Denominator(rec))
		results = append(results, domain.IndicatorResult{
			Code:   sub.Code,
			Period: rec.Period,
			Value:  v.V,
			Unit:   UnitPercent,
			Flag:   v.Flag,
		})
	}
	return results
}

// ManagementIndex folds the weighted sub-indicator results into IG_TOTAL.
// Results whose code carries no weight (IEF) are ignored, so their inputs
// can never move the index.
func (e *Engine) ManagementIndex(period domain.Period, results []domain.IndicatorResult) domain.IndicatorResult {
	weights := make(map[domain.Code]float64, len(e.table))
	for _, sub := range e.table {
		if sub.Weight > 0 {
			weights[sub.Code] = sub.Weight
		}
	}

	var items []calc.Weighted
	for _, r := range results {
		if w, ok := weights[r.Code]; ok {
			items = append(items, calc.Weighted{V: r.Value, W: w})
		}
	}

	v := calc.WeightedAverage(items)
	return domain.IndicatorResult{
		Code:   domain.CodeIGTotal,
		Period: period,
		Value:  v.V,
		Unit:   UnitPercent,
		Flag:   v.Flag,
	}
}
