package garmin

import (
	"math"
	"strings"

	"github.com/ptaljaard1985/health-dashboard/internal/health"

	log "github.com/sirupsen/logrus"
)

// typeKey2tracked maps Garmin activity type keys (lower case) onto the
// tracked types. Keep this a data table, it grows whenever the watch
// invents a new type key.
var typeKey2tracked = map[string]health.TrackedType{
	// running
	"running":           health.TypeRun,
	"trail_running":     health.TypeTrailRun,
	"treadmill_running": health.TypeRun,

	// walking & hiking
	"walking":        health.TypeWalk,
	"hiking":         health.TypeHike,
	"casual_walking": health.TypeWalk,

	// cycling
	"cycling":        health.TypeIndoorCycle,
	"indoor_cycling": health.TypeIndoorCycle,
	"virtual_ride":   health.TypeIndoorCycle,

	// strength; garmin files kettlebell workouts under both of these
	"strength_training": health.TypeKettlebells,
	"cardio":            health.TypeKettlebells,

	// racquet sports
	"tennis":       health.TypeTennis,
	"tennis_v2":    health.TypeTennis,
	"padel":        health.TypePadel,
	"paddelball":   health.TypePadel,
	"racquet_ball": health.TypePadel,

	"golf": health.TypeGolf,

	"other": health.TypeWalk,
}

// DefaultSkipTypeKeys are upstream categories dropped before
// classification, they are noise for this tracker.
var DefaultSkipTypeKeys = []string{"sleep", "uncategorized"}

const fallbackType = health.TypeWalk

// Classifier maps upstream Garmin activity categories onto the fixed
// tracked-type taxonomy.
type Classifier struct {
	mapping map[string]health.TrackedType
	skip    map[string]struct{}
}

// NewClassifier builds a classifier with the given skip list; nil means
// DefaultSkipTypeKeys.
func NewClassifier(skipTypeKeys []string) *Classifier {
	if skipTypeKeys == nil {
		skipTypeKeys = DefaultSkipTypeKeys
	}
	skip := make(map[string]struct{}, len(skipTypeKeys))
	for _, key := range skipTypeKeys {
		skip[strings.ToLower(key)] = struct{}{}
	}
	return &Classifier{
		mapping: typeKey2tracked,
		skip:    skip,
	}
}

// ShouldSkip reports whether the upstream category is excluded entirely.
func (c *Classifier) ShouldSkip(typeKey string) bool {
	_, skip := c.skip[strings.ToLower(typeKey)]
	return skip
}

// Classify maps the upstream category key onto a tracked type. Unknown
// keys fall back to Walk, with a warning so the mapping table can be
// extended. The fallback is policy, not an error.
func (c *Classifier) Classify(typeKey string) health.TrackedType {
	tracked, ok := c.mapping[strings.ToLower(typeKey)]
	if !ok {
		log.Warnf("unknown activity type: %s - mapping to '%s'", typeKey, fallbackType)
		return fallbackType
	}
	return tracked
}

// SecondsToMinutes converts an upstream duration, rounded to 1 decimal.
func SecondsToMinutes(seconds float64) float64 {
	return math.Round(seconds/60*10) / 10
}

// MetersToKm converts an upstream distance, rounded to 2 decimals.
func MetersToKm(meters float64) float64 {
	return math.Round(meters/1000*100) / 100
}

// GramsToKg converts an upstream body weight, rounded to 2 decimals.
func GramsToKg(grams float64) float64 {
	return math.Round(grams/1000*100) / 100
}
