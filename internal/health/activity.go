package health

import "time"

// TrackedType is one of the fixed activity categories the system recognizes.
// Garmin type keys are mapped onto these by garmin.Classifier.
type TrackedType string

const (
	TypeRun         TrackedType = "Run"
	TypeTrailRun    TrackedType = "Trail Run"
	TypeWalk        TrackedType = "Walk"
	TypeHike        TrackedType = "Hike"
	TypeIndoorCycle TrackedType = "Indoor Cycle"
	TypeKettlebells TrackedType = "Kettlebells"
	TypeTennis      TrackedType = "Tennis"
	TypePadel       TrackedType = "Padel"
	TypeGolf        TrackedType = "Golf"
	// TypeRucking exists only in manually entered rows, the Garmin
	// mapping never produces it. Still counted as cardio.
	TypeRucking TrackedType = "Rucking"
)

var cardioTypes = map[TrackedType]struct{}{
	TypeRun:         {},
	TypeWalk:        {},
	TypeIndoorCycle: {},
	TypeHike:        {},
	TypeTrailRun:    {},
	TypeRucking:     {},
	TypePadel:       {},
	TypeTennis:      {},
	TypeGolf:        {},
}

func (t TrackedType) IsCardio() bool {
	_, ok := cardioTypes[t]
	return ok
}

func (t TrackedType) IsStrength() bool {
	return t == TypeKettlebells
}

// Activity is one workout row. Rows are created by the importer and
// never mutated or deleted afterwards.
type Activity struct {
	ID       int         `json:"id"`
	Exercise string      `json:"exercise"`
	Date     time.Time   `json:"date"` // calendar day, midnight, no time component
	Type     TrackedType `json:"type"`
	// GarminActivityID is empty for manually entered rows,
	// unique across all rows otherwise.
	GarminActivityID string   `json:"garminActivityId,omitempty"`
	DurationMinutes  *float64 `json:"durationMinutes,omitempty"`
	DistanceKm       *float64 `json:"distanceKm,omitempty"`
	Calories         *int     `json:"calories,omitempty"`
	AvgHeartRate     *int     `json:"avgHeartRate,omitempty"`
	MaxHeartRate     *int     `json:"maxHeartRate,omitempty"`
	Notes            string   `json:"notes,omitempty"`
}

// WeighIn is one body-weight observation, at most one per calendar day.
type WeighIn struct {
	ID       int       `json:"id"`
	Date     time.Time `json:"date"`
	WeightKg float64   `json:"weightKg"`
}

// DateFormat is the canonical calendar-day representation used in
// logs, dedup sets and upstream payloads.
const DateFormat = "2006-01-02"

// Day truncates t to its calendar day in t's location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
