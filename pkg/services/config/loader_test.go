package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seg-tools/sso-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sso.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, float64(domain.DefaultK), cfg.K)

		goal, ok := cfg.Goal(domain.CodeIGTotal)
		require.True(t, ok)
		assert.Equal(t, 80.0, goal.Value)
		assert.Equal(t, domain.GoalAtLeast, goal.Direction)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
k: 100000
goals:
  IART:
    value: 85
  IF:
    value: 8
    direction: at_most
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 100_000.0, cfg.K)

		iart, _ := cfg.Goal(domain.CodeIART)
		assert.Equal(t, 85.0, iart.Value)
		assert.Equal(t, domain.GoalAtLeast, iart.Direction)

		frequency, _ := cfg.Goal(domain.CodeIF)
		assert.Equal(t, 8.0, frequency.Value)
		assert.Equal(t, domain.GoalAtMost, frequency.Direction)

		// Untouched goals keep their defaults.
		opas, _ := cfg.Goal(domain.CodeOPAS)
		assert.Equal(t, 80.0, opas.Value)
	})

	t.Run("unknown code rejected", func(t *testing.T) {
		path := writeConfig(t, "goals:\n  BOGUS:\n    value: 10\n")

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BOGUS")
	})

	t.Run("negative goal is fatal", func(t *testing.T) {
		path := writeConfig(t, "goals:\n  IART:\n    value: -5\n")

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("bad direction is fatal", func(t *testing.T) {
		path := writeConfig(t, "goals:\n  IART:\n    value: 80\n    direction: sideways\n")

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
