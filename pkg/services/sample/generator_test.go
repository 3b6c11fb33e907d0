package sample

import (
	"testing"
	"time"

	"github.com/seg-tools/sso-atlas/pkg/services/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorYear(t *testing.T) {
	t.Run("twelve valid consecutive months", func(t *testing.T) {
		records := NewGenerator(42).Year(2024)
		require.Len(t, records, 12)

		for i, rec := range records {
			assert.Equal(t, 2024, rec.Period.Year)
			assert.Equal(t, time.Month(i+1), rec.Period.Month)
		}

		vres := validator.Validate(records)
		assert.Empty(t, vres.Errors)
		assert.Len(t, vres.Valid, 12)
	})

	t.Run("no zero denominators", func(t *testing.T) {
		for _, rec := range NewGenerator(7).Year(2024) {
			assert.Positive(t, rec.HoursWorked)
			assert.Positive(t, rec.RiskAnalysesProgrammed)
			assert.Positive(t, rec.ObservationsProgrammed*rec.PeopleExpected)
			assert.Positive(t, rec.DialoguesPlanned*rec.AttendeesExpected)
			assert.Positive(t, rec.HazardsDetected)
			assert.Positive(t, rec.TrainingProgrammed)
			assert.Positive(t, rec.StandardsApplicable)
			assert.Positive(t, rec.ActionsProposed)
			assert.Positive(t, rec.ElementsTotal)
		}
	})

	t.Run("same seed reproduces the batch", func(t *testing.T) {
		assert.Equal(t, NewGenerator(99).Year(2024), NewGenerator(99).Year(2024))
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		assert.NotEqual(t, NewGenerator(1).Year(2024), NewGenerator(2).Year(2024))
	})

	t.Run("counts stay within their programmed ceiling", func(t *testing.T) {
		for _, rec := range NewGenerator(3).Year(2024) {
			assert.LessOrEqual(t, rec.RiskAnalysesExecuted, rec.RiskAnalysesProgrammed)
			assert.LessOrEqual(t, rec.WorkersTrained, rec.TrainingProgrammed)
			assert.LessOrEqual(t, rec.HazardsEliminated, rec.HazardsDetected)
		}
	})
}
