package healthstats

// Recommend picks today's coaching prompt. The cascade is evaluated top
// to bottom, first match wins: acute inactivity outranks weekly pacing,
// weekly pacing outranks monthly pacing, monthly pacing outranks generic
// reminders. Keep the order and the "-1" slack terms exactly as they
// are, they decide which branch fires near goal boundaries.
func Recommend(stats *Stats, goals Goals) string {
	// 1: too many rest days, urgent
	if stats.RestDays >= goals.RestDayUrgent {
		return "Get moving! Even a 20min walk counts."
	}

	// 2: rest day warning
	if stats.RestDays >= goals.RestDayWarning {
		return "Time to move. Light cardio or kettlebells."
	}

	// 3, 4: replace what leaves the 7-day window tomorrow
	if stats.Week.FallingOffStrength && stats.Week.Strength <= goals.WeeklyStrength {
		return "Kettlebells - replace what's falling off tomorrow"
	}
	if stats.Week.FallingOffCardio && stats.Week.Cardio <= goals.WeeklyCardio {
		return "Cardio - replace what's falling off tomorrow"
	}

	// 5, 6: behind this week and nothing recent
	if stats.Week.Strength < goals.WeeklyStrength-1 && !stats.StrengthInLast2Days {
		return "Kettlebells - you're behind this week"
	}
	if stats.Week.Cardio < goals.WeeklyCardio-1 && !stats.CardioInLast2Days {
		return "Cardio session - you're behind this week"
	}

	// 7, 8: behind monthly pace
	if stats.Month.StrengthBehind {
		return "Kettlebells session"
	}
	if stats.Month.CardioBehind {
		return "MAF cardio (walk, run, or cycle)"
	}

	// 9, 10: nothing of a kind for 3 days
	if !stats.StrengthInLast3Days {
		return "Kettlebells (none in last 3 days)"
	}
	if !stats.CardioInLast3Days {
		return "Easy cardio for recovery"
	}

	// 11: all good
	return "On track. Rest or light movement."
}
