package healthstats

import "fmt"

// Goals is the goal policy driving pace comparisons and the daily
// recommendation. Loaded from the goals TOML file, with the defaults
// below when no file is given.
type Goals struct {
	WeeklyCardio    int `toml:"weekly_cardio"`
	WeeklyStrength  int `toml:"weekly_strength"`
	MonthlyCardio   int `toml:"monthly_cardio"`
	MonthlyStrength int `toml:"monthly_strength"`

	RestDayWarning      int `toml:"rest_day_warning"`
	RestDayUrgent       int `toml:"rest_day_urgent"`
	WeighInReminderDays int `toml:"weigh_in_reminder_days"`

	TargetWeightKg float64 `toml:"target_weight_kg"`
}

func DefaultGoals() Goals {
	return Goals{
		WeeklyCardio:        4,
		WeeklyStrength:      3,
		MonthlyCardio:       16,
		MonthlyStrength:     10,
		RestDayWarning:      2,
		RestDayUrgent:       3,
		WeighInReminderDays: 3,
		TargetWeightKg:      82,
	}
}

func (g Goals) Validate() error {
	if g.WeeklyCardio <= 0 || g.WeeklyStrength <= 0 {
		return fmt.Errorf("weekly goals must be positive, got cardio=%d strength=%d", g.WeeklyCardio, g.WeeklyStrength)
	}
	if g.MonthlyCardio <= 0 || g.MonthlyStrength <= 0 {
		return fmt.Errorf("monthly goals must be positive, got cardio=%d strength=%d", g.MonthlyCardio, g.MonthlyStrength)
	}
	if g.RestDayUrgent < g.RestDayWarning {
		return fmt.Errorf("rest day urgent threshold (%d) below warning threshold (%d)", g.RestDayUrgent, g.RestDayWarning)
	}
	if g.TargetWeightKg <= 0 {
		return fmt.Errorf("target weight must be positive, got %.1f", g.TargetWeightKg)
	}
	return nil
}
