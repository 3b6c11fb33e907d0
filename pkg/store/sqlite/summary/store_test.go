package summary

import (
	"context"
	"testing"
	"time"

	"github.com/seg-tools/sso-atlas/pkg/models/domain"
	"github.com/seg-tools/sso-atlas/pkg/store/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) Store {
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	store, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})
	return store
}

func testSummary(hash string) domain.AnnualSummary {
	return domain.AnnualSummary{
		Year:      2024,
		InputHash: hash,
		Trend:     domain.TrendStable,
		Periods: []domain.PeriodResult{
			{
				Period: domain.Period{Year: 2024, Month: time.January},
				ManagementIndex: domain.IndicatorResult{
					Code:   domain.CodeIGTotal,
					Period: domain.Period{Year: 2024, Month: time.January},
					Value:  82.5,
					Unit:   "%",
				},
			},
		},
	}
}

func TestSummaryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("put then get by hash", func(t *testing.T) {
		store := setupStore(t)
		sum := testSummary("abc123")

		require.NoError(t, store.Put(ctx, sum))

		got, err := store.Get(ctx, "abc123")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, sum, *got)
	})

	t.Run("unknown hash yields nil without error", func(t *testing.T) {
		store := setupStore(t)

		got, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate put is idempotent", func(t *testing.T) {
		store := setupStore(t)
		sum := testSummary("dup")

		require.NoError(t, store.Put(ctx, sum))
		require.NoError(t, store.Put(ctx, sum))

		got, err := store.Get(ctx, "dup")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 2024, got.Year)
	})

	t.Run("missing hash rejected", func(t *testing.T) {
		store := setupStore(t)
		assert.Error(t, store.Put(ctx, domain.AnnualSummary{Year: 2024}))
	})
}
