// Package calc holds the formula primitives shared by the reactive and
// proactive engines. Every primitive has an explicit zero-denominator
// policy: the result is 0 with a flag, never a panic or an Inf/NaN.
package calc

import (
	"math"

	"github.com/seg-tools/sso-atlas/pkg/models/domain"
)

// Value is a computed number together with its edge-case flag.
type Value struct {
	V    float64
	Flag domain.Flag
}

// Ratio returns num/den, or 0 flagged undefined when den is 0 or the
// division does not produce a finite number.
func Ratio(num, den float64) Value {
	if den == 0 {
		return Value{Flag: domain.FlagUndefined}
	}
	v := num / den
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{Flag: domain.FlagUndefined}
	}
	return Value{V: v}
}

// ScaledRatio returns num*k/den with the same zero-denominator policy as
// Ratio.
func ScaledRatio(num, den, k float64) Value {
	return Ratio(num*k, den)
}

// Percent returns num/den expressed as a percentage. Values above 100 are
// preserved as-is; interpreting over-execution is the compliance layer's
// concern.
func Percent(num, den float64) Value {
	v := Ratio(num, den)
	v.V *= 100
	return v
}

// Weighted pairs a value with its weight for WeightedAverage.
type Weighted struct {
	V float64
	W float64
}

// WeightedAverage returns sum(v*w)/sum(w), or 0 flagged no-data when the
// item set is empty or all weights are zero.
func WeightedAverage(items []Weighted) Value {
	var sum, weights float64
	for _, it := range items {
		sum += it.V * it.W
		weights += it.W
	}
	if weights == 0 {
		return Value{Flag: domain.FlagNoData}
	}
	return Value{V: sum / weights}
}
