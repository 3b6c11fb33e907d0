package compliance

import (
	"testing"
	"time"

	"github.com/seg-tools/sso-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	period := domain.Period{Year: 2025, Month: time.July}

	tests := []struct {
		name       string
		value      float64
		goal       domain.Goal
		wantMeets  bool
		wantMargin float64
	}{
		{
			name:       "above an at-least goal",
			value:      90,
			goal:       domain.Goal{Value: 85, Direction: domain.GoalAtLeast},
			wantMeets:  true,
			wantMargin: 5,
		},
		{
			name:       "below an at-least goal",
			value:      70,
			goal:       domain.Goal{Value: 80, Direction: domain.GoalAtLeast},
			wantMeets:  false,
			wantMargin: -10,
		},
		{
			name:       "exactly on an at-least goal",
			value:      80,
			goal:       domain.Goal{Value: 80, Direction: domain.GoalAtLeast},
			wantMeets:  true,
			wantMargin: 0,
		},
		{
			name:       "below an at-most goal",
			value:      4,
			goal:       domain.Goal{Value: 10, Direction: domain.GoalAtMost},
			wantMeets:  true,
			wantMargin: -6,
		},
		{
			name:       "above an at-most goal",
			value:      12,
			goal:       domain.Goal{Value: 10, Direction: domain.GoalAtMost},
			wantMeets:  false,
			wantMargin: 2,
		},
		{
			name:       "exactly on an at-most goal",
			value:      10,
			goal:       domain.Goal{Value: 10, Direction: domain.GoalAtMost},
			wantMeets:  true,
			wantMargin: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := domain.IndicatorResult{Code: domain.CodeIART, Period: period, Value: tt.value}

			status := Evaluate(result, tt.goal)
			assert.Equal(t, tt.wantMeets, status.Meets)
			assert.Equal(t, tt.wantMargin, status.Margin)
			assert.Equal(t, tt.goal.Value, status.Goal)
			assert.Equal(t, domain.CodeIART, status.Code)
			assert.Equal(t, period, status.Period)
		})
	}
}

func TestEvaluateAll(t *testing.T) {
	cfg := domain.DefaultConfig()
	period := domain.Period{Year: 2025, Month: time.July}

	results := []domain.IndicatorResult{
		{Code: domain.CodeIART, Period: period, Value: 90},
		{Code: domain.CodeIF, Period: period, Value: 4},
		{Code: "UNKNOWN", Period: period, Value: 1},
	}

	statuses := EvaluateAll(results, cfg)
	require.Len(t, statuses, 2)
	assert.True(t, statuses[0].Meets)
	assert.True(t, statuses[1].Meets) // reactive: lower is better
}
