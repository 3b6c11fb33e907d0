// Package compliance compares computed indicator values against configured
// goals. Purely functional: a status is always derivable from the result
// and the goal alone.
package compliance

import "github.com/seg-tools/sso-atlas/pkg/models/domain"

// Evaluate compares one result against its goal. The boundary is
// inclusive in both polarities: a value exactly on the goal meets it.
// Margin is value - goal, signed, for downstream formatting.
func Evaluate(result domain.IndicatorResult, goal domain.Goal) domain.ComplianceStatus {
	meets := result.Value >= goal.Value
	if goal.Direction == domain.GoalAtMost {
		meets = result.Value <= goal.Value
	}
	return domain.ComplianceStatus{
		Code:   result.Code,
		Period: result.Period,
		Meets:  meets,
		Goal:   goal.Value,
		Margin: result.Value - goal.Value,
	}
}

// EvaluateAll maps Evaluate over a result set using the goals in cfg.
// Results without a configured goal are skipped.
func EvaluateAll(results []domain.IndicatorResult, cfg domain.Config) []domain.ComplianceStatus {
	statuses := make([]domain.ComplianceStatus, 0, len(results))
	for _, r := range results {
		goal, ok := cfg.Goal(r.Code)
		if !ok {
			continue
		}
		statuses = append(statuses, Evaluate(r, goal))
	}
	return statuses
}
