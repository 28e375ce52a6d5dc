package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ptaljaard1985/health-dashboard/internal/config"
	"github.com/ptaljaard1985/health-dashboard/internal/healthstats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGoalsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goals.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadGoals(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		goals, err := config.LoadGoals("")
		require.NoError(t, err)
		assert.Equal(t, healthstats.DefaultGoals(), goals)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeGoalsFile(t, `
weekly_cardio = 5
target_weight_kg = 80.5
`)
		goals, err := config.LoadGoals(path)
		require.NoError(t, err)

		assert.Equal(t, 5, goals.WeeklyCardio)
		assert.Equal(t, 80.5, goals.TargetWeightKg)
		// untouched values keep their defaults
		assert.Equal(t, healthstats.DefaultGoals().WeeklyStrength, goals.WeeklyStrength)
		assert.Equal(t, healthstats.DefaultGoals().MonthlyCardio, goals.MonthlyCardio)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadGoals(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})

	t.Run("invalid goal values rejected", func(t *testing.T) {
		path := writeGoalsFile(t, `weekly_cardio = 0`)
		_, err := config.LoadGoals(path)
		require.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeGoalsFile(t, `weekly_cardio = "lots"`)
		_, err := config.LoadGoals(path)
		require.Error(t, err)
	})
}
