package healthstats_test

import (
	"testing"

	"github.com/ptaljaard1985/health-dashboard/internal/healthstats"

	"github.com/stretchr/testify/assert"
)

// onTrackStats builds a bundle where no cascade branch fires except the
// final one; tests knock individual fields out of line.
func onTrackStats(goals healthstats.Goals) *healthstats.Stats {
	return &healthstats.Stats{
		RestDays: 0,
		Week: healthstats.WeekWindow{
			Cardio:   goals.WeeklyCardio,
			Strength: goals.WeeklyStrength,
		},
		Month: healthstats.MonthPace{
			CardioBehind:   false,
			StrengthBehind: false,
		},
		CardioInLast2Days:   true,
		StrengthInLast2Days: true,
		CardioInLast3Days:   true,
		StrengthInLast3Days: true,
	}
}

func TestRecommend(t *testing.T) {
	goals := healthstats.DefaultGoals()

	t.Run("all on track", func(t *testing.T) {
		stats := onTrackStats(goals)
		assert.Equal(t, "On track. Rest or light movement.", healthstats.Recommend(stats, goals))
	})

	t.Run("urgent rest days outrank everything", func(t *testing.T) {
		stats := onTrackStats(goals)
		stats.RestDays = goals.RestDayUrgent
		stats.Week.Strength = 0
		stats.Month.StrengthBehind = true
		assert.Equal(t, "Get moving! Even a 20min walk counts.", healthstats.Recommend(stats, goals))
	})

	t.Run("rest day warning", func(t *testing.T) {
		stats := onTrackStats(goals)
		stats.RestDays = goals.RestDayWarning
		assert.Equal(t, "Time to move. Light cardio or kettlebells.", healthstats.Recommend(stats, goals))
	})

	t.Run("strength falling off", func(t *testing.T) {
		stats := onTrackStats(goals)
		stats.Week.FallingOffStrength = true
		assert.Equal(t, "Kettlebells - replace what's falling off tomorrow", healthstats.Recommend(stats, goals))
	})

	t.Run("strength falling off but already above goal", func(t *testing.T) {
		stats := onTrackStats(goals)
		stats.Week.FallingOffStrength = true
		stats.Week.Strength = goals.WeeklyStrength + 1
		assert.Equal(t, "On track. Rest or light movement.", healthstats.Recommend(stats, goals))
	})

	t.Run("cardio falling off", func(t *testing.T) {
		stats := onTrackStats(goals)
		stats.Week.FallingOffCardio = true
		assert.Equal(t, "Cardio - replace what's falling off tomorrow", healthstats.Recommend(stats, goals))
	})

	t.Run("strength falling off beats cardio falling off", func(t *testing.T) {
		stats := onTrackStats(goals)
		stats.Week.FallingOffStrength = true
		stats.Week.FallingOffCardio = true
		assert.Equal(t, "Kettlebells - replace what's falling off tomorrow", healthstats.Recommend(stats, goals))
	})

	t.Run("behind on weekly strength", func(t *testing.T) {
		stats := onTrackStats(goals)
		stats.Week.Strength = goals.WeeklyStrength - 2
		stats.StrengthInLast2Days = false
		assert.Equal(t, "Kettlebells - you're behind this week", healthstats.Recommend(stats, goals))
	})

	t.Run("behind on weekly strength but trained recently", func(t *testing.T) {
		stats := onTrackStats(goals)
		stats.Week.Strength = goals.WeeklyStrength - 2
		assert.Equal(t, "On track. Rest or light movement.", healthstats.Recommend(stats, goals))
	})

	t.Run("one below weekly goal is still within slack", func(t *testing.T) {
		stats := onTrackStats(goals)
		stats.Week.Strength = goals.WeeklyStrength - 1
		stats.StrengthInLast2Days = false
		assert.Equal(t, "On track. Rest or light movement.", healthstats.Recommend(stats, goals))
	})

	t.Run("behind on weekly cardio", func(t *testing.T) {
		stats := onTrackStats(goals)
		stats.Week.Cardio = goals.WeeklyCardio - 2
		stats.CardioInLast2Days = false
		assert.Equal(t, "Cardio session - you're behind this week", healthstats.Recommend(stats, goals))
	})

	t.Run("behind on monthly strength pace", func(t *testing.T) {
		stats := onTrackStats(goals)
		stats.Month.StrengthBehind = true
		assert.Equal(t, "Kettlebells session", healthstats.Recommend(stats, goals))
	})

	t.Run("behind on monthly cardio pace", func(t *testing.T) {
		stats := onTrackStats(goals)
		stats.Month.CardioBehind = true
		assert.Equal(t, "MAF cardio (walk, run, or cycle)", healthstats.Recommend(stats, goals))
	})

	t.Run("no strength for three days", func(t *testing.T) {
		stats := onTrackStats(goals)
		stats.StrengthInLast3Days = false
		assert.Equal(t, "Kettlebells (none in last 3 days)", healthstats.Recommend(stats, goals))
	})

	t.Run("no cardio for three days", func(t *testing.T) {
		stats := onTrackStats(goals)
		stats.CardioInLast3Days = false
		assert.Equal(t, "Easy cardio for recovery", healthstats.Recommend(stats, goals))
	})
}
