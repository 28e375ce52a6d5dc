package healthstats

import (
	"time"

	"github.com/ptaljaard1985/health-dashboard/internal/health"
)

// Stats is the full derived-statistics bundle both report consumers
// (daily telegram message, HTML dashboard) work from. Everything here is
// recomputed from the raw history on every run, nothing is cached.
type Stats struct {
	Today time.Time `json:"today"`

	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
	// RestDays is the number of full days since the last activity,
	// 0 when there is one today.
	RestDays int `json:"restDays"`

	Week   WeekWindow     `json:"week"`
	Month  MonthPace      `json:"month"`
	Months []MonthSummary `json:"months"`

	Weight WeightStats `json:"weight"`

	TotalWorkouts        int     `json:"totalWorkouts"`
	TotalDurationMinutes float64 `json:"totalDurationMinutes"`
	AvgDurationMinutes   float64 `json:"avgDurationMinutes"`

	WeeklyCounts     []WeekCount     `json:"weeklyCounts"`
	Breakdown        []TypeBreakdown `json:"breakdown"`
	ThisWeekDays     []time.Weekday  `json:"thisWeekDays"`
	ThisWeekWorkouts int             `json:"thisWeekWorkouts"`
	YearToDate       YTDBreakdown    `json:"yearToDate"`

	CardioInLast2Days   bool `json:"cardioInLast2Days"`
	StrengthInLast2Days bool `json:"strengthInLast2Days"`
	CardioInLast3Days   bool `json:"cardioInLast3Days"`
	StrengthInLast3Days bool `json:"strengthInLast3Days"`
}

// WeekWindow covers the rolling 7 days [today-7, today-1]: yesterday plus
// the six days before it. Today is always excluded, the day is still in
// progress.
type WeekWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	Cardio     int     `json:"cardio"`
	Strength   int     `json:"strength"`
	TotalHours float64 `json:"totalHours"`
	RestDays   int     `json:"restDays"`

	// FallingOff flags mark records dated exactly 8 days before today,
	// i.e. leaving the window on the next roll-forward.
	FallingOffCardio   bool `json:"fallingOffCardio"`
	FallingOffStrength bool `json:"fallingOffStrength"`

	Activities []health.Activity `json:"activities"`
}

// MonthPace is the current calendar month measured against the pro-rata
// expectation of the monthly goals.
type MonthPace struct {
	Name        string `json:"name"`  // "March"
	Short       string `json:"short"` // "Mar"
	Day         int    `json:"day"`
	DaysInMonth int    `json:"daysInMonth"`

	Cardio   int `json:"cardio"`
	Strength int `json:"strength"`

	CardioExpected   int `json:"cardioExpected"`
	StrengthExpected int `json:"strengthExpected"`

	// Behind means actual < expected - 1; one unit of slack is always
	// allowed before flagging.
	CardioBehind   bool `json:"cardioBehind"`
	StrengthBehind bool `json:"strengthBehind"`

	// PerWeekNeeded is the catch-up rate for the rest of the month,
	// 0 when not behind or the month is over.
	CardioPerWeekNeeded   float64 `json:"cardioPerWeekNeeded"`
	StrengthPerWeekNeeded float64 `json:"strengthPerWeekNeeded"`
}

// MonthSummary is one dashboard row per calendar month with activity data.
type MonthSummary struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Name  string     `json:"name"` // "March 2026"

	Cardio   int `json:"cardio"`
	Strength int `json:"strength"`
	Hours    int `json:"hours"`
	RestDays int `json:"restDays"`

	// WeightChangeKg is last weight of the month minus last weight of the
	// nearest preceding month with data; nil when the month has no
	// weigh-ins.
	WeightChangeKg *float64 `json:"weightChangeKg,omitempty"`

	Current bool `json:"current"`
}

type WeightStats struct {
	LatestKg         *float64   `json:"latestKg,omitempty"`
	LatestDate       *time.Time `json:"latestDate,omitempty"`
	DaysSinceWeighIn *int       `json:"daysSinceWeighIn,omitempty"`

	Change7dKg  *float64 `json:"change7dKg,omitempty"`
	Change30dKg *float64 `json:"change30dKg,omitempty"`

	KgToTarget            *float64   `json:"kgToTarget,omitempty"`
	ProjectedDaysToTarget *int       `json:"projectedDaysToTarget,omitempty"`
	ProjectedTargetDate   *time.Time `json:"projectedTargetDate,omitempty"`

	Series []WeightPoint `json:"series"`
}

// WeightPoint is one weigh-in with its trailing 10-calendar-day average.
type WeightPoint struct {
	Date         time.Time `json:"date"`
	WeightKg     float64   `json:"weightKg"`
	RollingAvgKg float64   `json:"rollingAvgKg"`
}

type WeekCount struct {
	WeekStart time.Time `json:"weekStart"`
	Label     string    `json:"label"` // "02 Jan"
	Count     int       `json:"count"`
}

type TypeBreakdown struct {
	Type         health.TrackedType `json:"type"`
	Count        int                `json:"count"`
	TotalMinutes float64            `json:"totalMinutes"`
}

// YTDBreakdown groups the year-to-date activity counts the way the
// dashboard presents them. Golf is deliberately not grouped anywhere.
type YTDBreakdown struct {
	Running  int `json:"running"` // Run + Trail Run
	Cycling  int `json:"cycling"`
	WalkHike int `json:"walkHike"` // Walk + Hike + Rucking
	Racquet  int `json:"racquet"`  // Tennis + Padel
	Strength int `json:"strength"`
}
