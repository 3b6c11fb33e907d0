package report

import (
	"testing"
	"time"

	"github.com/seg-tools/sso-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformRecord builds a month where every proactive ratio evaluates to pct,
// so the management index lands exactly on pct.
func uniformRecord(year int, month time.Month, pct float64) domain.RawRecord {
	return domain.RawRecord{
		Period:                 domain.Period{Year: year, Month: month},
		HoursWorked:            50_000,
		RiskAnalysesExecuted:   pct,
		RiskAnalysesProgrammed: 100,
		ObservationsPerformed:  pct,
		ObservationsProgrammed: 100,
		PeopleConforming:       1,
		PeopleExpected:         1,
		DialoguesHeld:          pct,
		DialoguesPlanned:       100,
		Attendees:              1,
		AttendeesExpected:      1,
		HazardsEliminated:      pct,
		HazardsDetected:        100,
		WorkersTrained:         pct,
		TrainingProgrammed:     100,
		StandardsComplied:      pct,
		StandardsApplicable:    100,
		ActionsImplemented:     pct,
		ActionsProposed:        100,
		ElementsAudited:        pct,
		ElementsTotal:          100,
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(domain.DefaultConfig())
	require.NoError(t, err)
	return m
}

func TestManagerEvaluate(t *testing.T) {
	t.Run("reactive worked example", func(t *testing.T) {
		rec := uniformRecord(2024, time.January, 80)
		rec.InjuriesWithLeave = 2
		rec.LostDays = 10

		summary, vres, err := newTestManager(t).Evaluate([]domain.RawRecord{rec})
		require.NoError(t, err)
		assert.Empty(t, vres.Errors)
		require.Len(t, summary.Periods, 1)

		period := summary.Periods[0]
		frequency, ok := period.Result(domain.CodeIF)
		require.True(t, ok)
		assert.InDelta(t, 8.0, frequency.Value, 1e-9)

		gravity, ok := period.Result(domain.CodeIG)
		require.True(t, ok)
		assert.InDelta(t, 40.0, gravity.Value, 1e-9)

		risk, ok := period.Result(domain.CodeTR)
		require.True(t, ok)
		assert.InDelta(t, 5.0, risk.Value, 1e-9)
	})

	t.Run("management index and status", func(t *testing.T) {
		summary, _, err := newTestManager(t).Evaluate([]domain.RawRecord{
			uniformRecord(2024, time.January, 80),
		})
		require.NoError(t, err)

		period := summary.Periods[0]
		assert.InDelta(t, 80.0, period.ManagementIndex.Value, 1e-9)
		// Goal boundary is inclusive.
		assert.True(t, period.ManagementStatus.Meets)
		assert.InDelta(t, 0.0, period.ManagementStatus.Margin, 1e-9)
	})

	t.Run("identical input yields identical summaries", func(t *testing.T) {
		records := []domain.RawRecord{
			uniformRecord(2024, time.January, 70),
			uniformRecord(2024, time.February, 85),
		}
		records[0].InjuriesWithLeave = 1
		records[0].LostDays = 4

		m := newTestManager(t)
		first, _, err := m.Evaluate(records)
		require.NoError(t, err)
		second, _, err := m.Evaluate(records)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, first.InputHash, second.InputHash)
	})

	t.Run("invalid period excluded, rest proceed", func(t *testing.T) {
		bad := uniformRecord(2024, time.February, 80)
		bad.LostDays = -3

		summary, vres, err := newTestManager(t).Evaluate([]domain.RawRecord{
			uniformRecord(2024, time.January, 80),
			bad,
			uniformRecord(2024, time.March, 80),
		})
		require.NoError(t, err)
		require.Len(t, vres.Errors, 1)
		require.Len(t, summary.Periods, 2)
		assert.Equal(t, time.January, summary.Periods[0].Period.Month)
		assert.Equal(t, time.March, summary.Periods[1].Period.Month)
	})

	t.Run("no valid periods is an error", func(t *testing.T) {
		bad := uniformRecord(2024, time.January, 80)
		bad.Workers = -1

		_, vres, err := newTestManager(t).Evaluate([]domain.RawRecord{bad})
		assert.Error(t, err)
		assert.Len(t, vres.Errors, 1)
	})

	t.Run("rollups cover populated quarters plus the year", func(t *testing.T) {
		summary, _, err := newTestManager(t).Evaluate([]domain.RawRecord{
			uniformRecord(2024, time.January, 80),
			uniformRecord(2024, time.February, 80),
			uniformRecord(2024, time.April, 80),
		})
		require.NoError(t, err)

		require.Len(t, summary.Rollups, 3)
		assert.Equal(t, "Q1", summary.Rollups[0].Label)
		assert.Equal(t, "Q2", summary.Rollups[1].Label)
		assert.Equal(t, domain.RollupAnnual, summary.Rollups[2].Kind)
		assert.Equal(t, "YEAR", summary.Rollups[2].Label)
		assert.InDelta(t, 150_000, summary.Rollups[2].Hours, 1e-9)
	})

	t.Run("stats aggregate the surviving periods", func(t *testing.T) {
		jan := uniformRecord(2024, time.January, 70)
		jan.InjuriesWithLeave = 2
		jan.LostDays = 6
		feb := uniformRecord(2024, time.February, 90)

		summary, _, err := newTestManager(t).Evaluate([]domain.RawRecord{jan, feb})
		require.NoError(t, err)

		assert.InDelta(t, 2.0, summary.Stats.TotalLesions, 1e-9)
		assert.InDelta(t, 6.0, summary.Stats.TotalLostDays, 1e-9)
		assert.InDelta(t, 100_000, summary.Stats.TotalHours, 1e-9)
		assert.InDelta(t, 80.0, summary.Stats.MeanManagementIndex, 1e-9)
		assert.Equal(t, 1, summary.Stats.PeriodsMeetingGoal)
		assert.Equal(t, 1, summary.Stats.PeriodsWithoutLesions)
	})
}

func TestClassifyTrend(t *testing.T) {
	batch := func(values ...float64) []domain.RawRecord {
		var recs []domain.RawRecord
		for i, v := range values {
			recs = append(recs, uniformRecord(2024, time.Month(i+1), v))
		}
		return recs
	}

	tests := []struct {
		name   string
		values []float64
		want   domain.Trend
	}{
		{"rising index improves", []float64{70, 75, 80}, domain.TrendImproving},
		{"falling index declines", []float64{80, 75, 70}, domain.TrendDeclining},
		{"movement inside the dead band is stable", []float64{75, 75.2, 75.4}, domain.TrendStable},
		{"single period is stable", []float64{75}, domain.TrendStable},
		{"recovery outweighs the dip", []float64{80, 70, 95}, domain.TrendImproving},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, _, err := newTestManager(t).Evaluate(batch(tt.values...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, summary.Trend)
		})
	}
}

func TestManagerInputHash(t *testing.T) {
	m := newTestManager(t)
	base := []domain.RawRecord{uniformRecord(2024, time.January, 80)}

	t.Run("stable for the same input", func(t *testing.T) {
		assert.Equal(t, m.InputHash(base), m.InputHash(base))
	})

	t.Run("changes with the data", func(t *testing.T) {
		changed := uniformRecord(2024, time.January, 80)
		changed.LostDays = 1
		assert.NotEqual(t, m.InputHash(base), m.InputHash([]domain.RawRecord{changed}))
	})

	t.Run("changes with the configuration", func(t *testing.T) {
		cfg := domain.DefaultConfig()
		cfg.K = 100_000
		other, err := NewManager(cfg)
		require.NoError(t, err)
		assert.NotEqual(t, m.InputHash(base), other.InputHash(base))
	})
}
