package validator

import (
	"testing"
	"time"

	"github.com/seg-tools/sso-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(year int, month time.Month) domain.RawRecord {
	return domain.RawRecord{
		Period:                 domain.Period{Year: year, Month: month},
		HoursWorked:            15_000,
		InjuriesWithLeave:      1,
		LostDays:               3,
		RiskAnalysesExecuted:   8,
		RiskAnalysesProgrammed: 10,
	}
}

func TestValidate(t *testing.T) {
	t.Run("clean batch passes and is sorted", func(t *testing.T) {
		batch := []domain.RawRecord{
			record(2025, time.March),
			record(2025, time.January),
			record(2025, time.February),
		}

		res := Validate(batch)
		require.Empty(t, res.Errors)
		require.Len(t, res.Valid, 3)
		assert.Equal(t, time.January, res.Valid[0].Period.Month)
		assert.Equal(t, time.March, res.Valid[2].Period.Month)
	})

	t.Run("negative count excludes only its period", func(t *testing.T) {
		bad := record(2025, time.February)
		bad.LostDays = -2

		res := Validate([]domain.RawRecord{record(2025, time.January), bad})
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "lost_days", res.Errors[0].Field)
		assert.Equal(t, RuleNonNegative, res.Errors[0].Rule)
		assert.Equal(t, domain.Period{Year: 2025, Month: time.February}, res.Errors[0].Period)

		require.Len(t, res.Valid, 1)
		assert.Equal(t, time.January, res.Valid[0].Period.Month)
	})

	t.Run("zero hours is a warning, not an error", func(t *testing.T) {
		rec := record(2025, time.January)
		rec.HoursWorked = 0

		res := Validate([]domain.RawRecord{rec})
		require.Empty(t, res.Errors)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, RuleZeroHours, res.Warnings[0].Rule)
		assert.Len(t, res.Valid, 1)
	})

	t.Run("workers fallback suppresses the zero-hours warning", func(t *testing.T) {
		rec := record(2025, time.January)
		rec.HoursWorked = 0
		rec.Workers = 90

		res := Validate([]domain.RawRecord{rec})
		assert.Empty(t, res.Warnings)
	})

	t.Run("duplicate period rejected", func(t *testing.T) {
		res := Validate([]domain.RawRecord{record(2025, time.May), record(2025, time.May)})
		require.Len(t, res.Errors, 1)
		assert.Equal(t, RuleDuplicatePeriod, res.Errors[0].Rule)
		assert.Len(t, res.Valid, 1)
	})

	t.Run("invalid period rejected", func(t *testing.T) {
		rec := record(2025, time.Month(13))
		res := Validate([]domain.RawRecord{rec})
		require.Len(t, res.Errors, 1)
		assert.Equal(t, RuleInvalidPeriod, res.Errors[0].Rule)
		assert.Empty(t, res.Valid)
	})

	t.Run("multiple violations reported per record", func(t *testing.T) {
		rec := record(2025, time.June)
		rec.Workers = -1
		rec.HazardsDetected = -4

		res := Validate([]domain.RawRecord{rec})
		assert.Len(t, res.Errors, 2)
		assert.Empty(t, res.Valid)
	})
}
