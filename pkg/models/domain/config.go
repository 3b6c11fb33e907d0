package domain

import "fmt"

// DefaultK is the normalization constant for frequency and severity
// formulas: incidents per 200,000 worked hours, roughly 100 workers over a
// year.
const DefaultK = 200_000

// GoalDirection states which side of the goal counts as compliant.
type GoalDirection string

const (
	// GoalAtLeast: the indicator meets its goal when value >= goal.
	// Used by the proactive execution percentages and the management index.
	GoalAtLeast GoalDirection = "at_least"
	// GoalAtMost: the indicator meets its goal when value <= goal.
	// Used by the reactive indicators, which measure negative outcomes.
	GoalAtMost GoalDirection = "at_most"
)

type Goal struct {
	Value     float64
	Direction GoalDirection
}

// Config carries the constants for one evaluation run. It is supplied once
// per batch and never mutated by the engine.
type Config struct {
	K     float64
	Goals map[Code]Goal
}

// DefaultConfig returns the regulatory defaults: K = 200,000, an 80%
// execution goal for every proactive indicator and the management index,
// and reference thresholds for the reactive indicators.
func DefaultConfig() Config {
	goals := map[Code]Goal{
		CodeIF: {Value: 10, Direction: GoalAtMost},
		CodeIG: {Value: 60, Direction: GoalAtMost},
		CodeTR: {Value: 10, Direction: GoalAtMost},
	}
	for _, code := range ProactiveCodes() {
		goals[code] = Goal{Value: 80, Direction: GoalAtLeast}
	}
	goals[CodeIGTotal] = Goal{Value: 80, Direction: GoalAtLeast}
	return Config{
		K:     DefaultK,
		Goals: goals,
	}
}

// Validate rejects configurations the engine must not run with. A negative
// K or goal is fatal for the whole run.
func (c Config) Validate() error {
	if c.K < 0 {
		return fmt.Errorf("constant K must be non-negative, got %v", c.K)
	}
	for code, goal := range c.Goals {
		if goal.Value < 0 {
			return fmt.Errorf("goal for %s must be non-negative, got %v", code, goal.Value)
		}
		switch goal.Direction {
		case GoalAtLeast, GoalAtMost:
		default:
			return fmt.Errorf("goal for %s has unknown direction %q", code, goal.Direction)
		}
	}
	return nil
}

// Goal returns the configured goal for code, if any.
func (c Config) Goal(code Code) (Goal, bool) {
	goal, ok := c.Goals[code]
	return goal, ok
}
