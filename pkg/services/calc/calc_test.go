package calc

import (
	"testing"

	"github.com/seg-tools/sso-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		num, den float64
		want     float64
		wantFlag domain.Flag
	}{
		{name: "plain division", num: 10, den: 2, want: 5},
		{name: "zero numerator", num: 0, den: 4, want: 0},
		{name: "zero denominator", num: 3, den: 0, want: 0, wantFlag: domain.FlagUndefined},
		{name: "both zero", num: 0, den: 0, want: 0, wantFlag: domain.FlagUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ratio(tt.num, tt.den)
			assert.Equal(t, tt.want, got.V)
			assert.Equal(t, tt.wantFlag, got.Flag)
		})
	}
}

func TestScaledRatio(t *testing.T) {
	t.Run("frequency example", func(t *testing.T) {
		got := ScaledRatio(2, 50_000, 200_000)
		assert.Equal(t, 8.0, got.V)
		assert.Equal(t, domain.FlagNone, got.Flag)
	})

	t.Run("zero denominator", func(t *testing.T) {
		got := ScaledRatio(2, 0, 200_000)
		assert.Equal(t, 0.0, got.V)
		assert.Equal(t, domain.FlagUndefined, got.Flag)
	})
}

func TestPercent(t *testing.T) {
	t.Run("execution rate", func(t *testing.T) {
		got := Percent(18, 20)
		assert.InDelta(t, 90.0, got.V, 1e-9)
		assert.Equal(t, domain.FlagNone, got.Flag)
	})

	t.Run("over-execution is preserved", func(t *testing.T) {
		got := Percent(25, 20)
		assert.InDelta(t, 125.0, got.V, 1e-9)
	})

	t.Run("nothing programmed", func(t *testing.T) {
		got := Percent(5, 0)
		assert.Equal(t, 0.0, got.V)
		assert.Equal(t, domain.FlagUndefined, got.Flag)
	})
}

func TestWeightedAverage(t *testing.T) {
	t.Run("equal values return exactly that value", func(t *testing.T) {
		items := []Weighted{{V: 87.5, W: 5}, {V: 87.5, W: 3}, {V: 87.5, W: 2}}
		got := WeightedAverage(items)
		assert.Equal(t, 87.5, got.V)
		assert.Equal(t, domain.FlagNone, got.Flag)
	})

	t.Run("weights bias the result", func(t *testing.T) {
		items := []Weighted{{V: 100, W: 3}, {V: 0, W: 1}}
		got := WeightedAverage(items)
		assert.Equal(t, 75.0, got.V)
	})

	t.Run("empty set", func(t *testing.T) {
		got := WeightedAverage(nil)
		assert.Equal(t, 0.0, got.V)
		assert.Equal(t, domain.FlagNoData, got.Flag)
	})

	t.Run("all zero weights", func(t *testing.T) {
		got := WeightedAverage([]Weighted{{V: 50, W: 0}, {V: 90, W: 0}})
		assert.Equal(t, 0.0, got.V)
		assert.Equal(t, domain.FlagNoData, got.Flag)
	})
}
