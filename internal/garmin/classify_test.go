package garmin_test

import (
	"testing"

	"github.com/ptaljaard1985/health-dashboard/internal/garmin"
	"github.com/ptaljaard1985/health-dashboard/internal/health"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := garmin.NewClassifier(nil)

	testCases := []struct {
		typeKey string
		want    health.TrackedType
	}{
		{typeKey: "running", want: health.TypeRun},
		{typeKey: "treadmill_running", want: health.TypeRun},
		{typeKey: "trail_running", want: health.TypeTrailRun},
		{typeKey: "walking", want: health.TypeWalk},
		{typeKey: "casual_walking", want: health.TypeWalk},
		{typeKey: "hiking", want: health.TypeHike},
		{typeKey: "cycling", want: health.TypeIndoorCycle},
		{typeKey: "indoor_cycling", want: health.TypeIndoorCycle},
		{typeKey: "virtual_ride", want: health.TypeIndoorCycle},
		{typeKey: "strength_training", want: health.TypeKettlebells},
		{typeKey: "cardio", want: health.TypeKettlebells},
		{typeKey: "tennis", want: health.TypeTennis},
		{typeKey: "tennis_v2", want: health.TypeTennis},
		{typeKey: "padel", want: health.TypePadel},
		{typeKey: "paddelball", want: health.TypePadel},
		{typeKey: "racquet_ball", want: health.TypePadel},
		{typeKey: "golf", want: health.TypeGolf},
		{typeKey: "other", want: health.TypeWalk},
		// case insensitive
		{typeKey: "RUNNING", want: health.TypeRun},
		// unknown keys fall back to walk
		{typeKey: "breathwork", want: health.TypeWalk},
		{typeKey: "", want: health.TypeWalk},
	}

	for _, tc := range testCases {
		t.Run(tc.typeKey, func(t *testing.T) {
			assert.Equal(t, tc.want, classifier.Classify(tc.typeKey))
		})
	}
}

func TestClassifier_ShouldSkip(t *testing.T) {
	t.Run("default skip list", func(t *testing.T) {
		classifier := garmin.NewClassifier(nil)
		assert.True(t, classifier.ShouldSkip("sleep"))
		assert.True(t, classifier.ShouldSkip("uncategorized"))
		assert.True(t, classifier.ShouldSkip("Sleep"))
		assert.False(t, classifier.ShouldSkip("running"))
	})

	t.Run("custom skip list", func(t *testing.T) {
		classifier := garmin.NewClassifier([]string{"golf"})
		assert.True(t, classifier.ShouldSkip("golf"))
		assert.False(t, classifier.ShouldSkip("sleep"))
	})

	t.Run("empty skip list skips nothing", func(t *testing.T) {
		classifier := garmin.NewClassifier([]string{})
		assert.False(t, classifier.ShouldSkip("sleep"))
	})
}

func TestUnitConversions(t *testing.T) {
	assert.Equal(t, 45.5, garmin.SecondsToMinutes(2730))
	assert.Equal(t, 20.1, garmin.SecondsToMinutes(1204))
	assert.Equal(t, 5.42, garmin.MetersToKm(5423))
	assert.Equal(t, 0.0, garmin.MetersToKm(0))
	assert.Equal(t, 92.45, garmin.GramsToKg(92451))
}
