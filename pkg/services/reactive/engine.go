// Package reactive computes the incident-severity indicators required by
// IESS CD 513: frequency index (IF), severity index (IG) and risk rate (TR).
package reactive

import (
	"github.com/seg-tools/sso-atlas/pkg/models/domain"
	"github.com/seg-tools/sso-atlas/pkg/services/calc"
)

const (
	UnitIndex        = "index"
	UnitDaysPerEvent = "days/lesion"
)

// Engine computes the three reactive indicators for a period. It carries no
// state beyond the normalization constant and is safe for concurrent use.
type Engine struct {
	k float64
}

func NewEngine(k float64) *Engine {
	return &Engine{k: k}
}

// Compute returns IF, IG and TR for one record, in that order. A record
// with no worked hours yields IF and IG of 0 flagged undefined; a record
// with no lesions yields TR of 0 flagged no-incidents.
func (e *Engine) Compute(rec domain.RawRecord) []domain.IndicatorResult {
	hours := rec.EffectiveHours()
	lesions := rec.TotalLesions()

	frequency := calc.ScaledRatio(lesions, hours, e.k)
	severity := calc.ScaledRatio(rec.LostDays, hours, e.k)
	risk := riskRate(rec.LostDays, lesions)

	return []domain.IndicatorResult{
		{Code: domain.CodeIF, Period: rec.Period, Value: frequency.V, Unit: UnitIndex, Flag: frequency.Flag},
		{Code: domain.CodeIG, Period: rec.Period, Value: severity.V, Unit: UnitIndex, Flag: severity.Flag},
		{Code: domain.CodeTR, Period: rec.Period, Value: risk.V, Unit: UnitDaysPerEvent, Flag: risk.Flag},
	}
}

// Rollup aggregates several periods into one reactive summary row: inputs
// are summed, then the indices are recomputed over the sums with the same
// constant.
func (e *Engine) Rollup(kind domain.RollupKind, label string, records []domain.RawRecord) domain.Rollup {
	var lesions, lostDays, hours float64
	for _, rec := range records {
		lesions += rec.TotalLesions()
		lostDays += rec.LostDays
		hours += rec.EffectiveHours()
	}

	frequency := calc.ScaledRatio(lesions, hours, e.k)
	severity := calc.ScaledRatio(lostDays, hours, e.k)
	risk := riskRate(lostDays, lesions)

	return domain.Rollup{
		Kind:     kind,
		Label:    label,
		Lesions:  lesions,
		LostDays: lostDays,
		Hours:    hours,
		IF:       domain.IndicatorResult{Code: domain.CodeIF, Value: frequency.V, Unit: UnitIndex, Flag: frequency.Flag},
		IG:       domain.IndicatorResult{Code: domain.CodeIG, Value: severity.V, Unit: UnitIndex, Flag: severity.Flag},
		TR:       domain.IndicatorResult{Code: domain.CodeTR, Value: risk.V, Unit: UnitDaysPerEvent, Flag: risk.Flag},
	}
}

// riskRate is lost days per lesion. Zero lesions is a healthy state, not an
// error: the value is 0 flagged no-incidents.
func riskRate(lostDays, lesions float64) calc.Value {
	if lesions == 0 {
		return calc.Value{Flag: domain.FlagNoIncidents}
	}
	return calc.Ratio(lostDays, lesions)
}
