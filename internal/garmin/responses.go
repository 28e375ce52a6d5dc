package garmin

import (
	"fmt"
	"time"

	"github.com/ptaljaard1985/health-dashboard/internal/health"
)

// RawActivity is one activity as returned by the Garmin Connect activity
// list endpoint. Durations are seconds, distances meters.
type RawActivity struct {
	ActivityID     int64           `json:"activityId"`
	ActivityName   string          `json:"activityName"`
	StartTimeLocal string          `json:"startTimeLocal"` // "2026-02-03 07:15:00"
	ActivityType   ActivityTypeRef `json:"activityType"`
	Duration       *float64        `json:"duration,omitempty"`
	Distance       *float64        `json:"distance,omitempty"`
	Calories       *float64        `json:"calories,omitempty"`
	AverageHR      *float64        `json:"averageHR,omitempty"`
	MaxHR          *float64        `json:"maxHR,omitempty"`
	Description    string          `json:"description,omitempty"`
}

type ActivityTypeRef struct {
	TypeKey string `json:"typeKey"`
}

// TypeKey returns the upstream category key used for classification.
// Garmin sometimes omits the type block, those count as "other".
func (a RawActivity) TypeKey() string {
	if a.ActivityType.TypeKey == "" {
		return "other"
	}
	return a.ActivityType.TypeKey
}

// Date parses the local calendar day out of the start timestamp.
func (a RawActivity) Date() (time.Time, error) {
	if len(a.StartTimeLocal) < len(health.DateFormat) {
		return time.Time{}, fmt.Errorf("start time too short: %q", a.StartTimeLocal)
	}
	day, err := time.Parse(health.DateFormat, a.StartTimeLocal[:len(health.DateFormat)])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse start time %q: %w", a.StartTimeLocal, err)
	}
	return day, nil
}

// WeightEntry is one daily body-composition observation, weight in grams.
type WeightEntry struct {
	CalendarDate string  `json:"calendarDate"`
	WeightGrams  float64 `json:"weight"`
}

func (w WeightEntry) Date() (time.Time, error) {
	day, err := time.Parse(health.DateFormat, w.CalendarDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse calendar date %q: %w", w.CalendarDate, err)
	}
	return day, nil
}

type bodyCompositionResponse struct {
	DateWeightList []WeightEntry `json:"dateWeightList"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}
