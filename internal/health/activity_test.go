package health_test

import (
	"testing"
	"time"

	"github.com/ptaljaard1985/health-dashboard/internal/health"

	"github.com/stretchr/testify/assert"
)

func TestTrackedTypeCategories(t *testing.T) {
	cardio := []health.TrackedType{
		health.TypeRun, health.TypeTrailRun, health.TypeWalk, health.TypeHike,
		health.TypeIndoorCycle, health.TypeTennis, health.TypePadel,
		health.TypeGolf, health.TypeRucking,
	}
	for _, tracked := range cardio {
		assert.True(t, tracked.IsCardio(), "%s should be cardio", tracked)
		assert.False(t, tracked.IsStrength(), "%s should not be strength", tracked)
	}

	assert.True(t, health.TypeKettlebells.IsStrength())
	assert.False(t, health.TypeKettlebells.IsCardio())
}

func TestDay(t *testing.T) {
	ts := time.Date(2026, 3, 15, 18, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), health.Day(ts))

	// already truncated stays put
	midnight := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, midnight, health.Day(midnight))
}
