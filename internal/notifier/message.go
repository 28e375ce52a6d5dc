package notifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ptaljaard1985/health-dashboard/internal/healthstats"
)

// BuildDailyMessage renders the 6am coaching summary: last 7 days,
// calendar month pace, rest days, weight trend and the recommendation
// for today. Telegram HTML markup, degrades to placeholders when weight
// data is missing.
func BuildDailyMessage(stats *healthstats.Stats, goals healthstats.Goals) string {
	var lines []string

	lines = append(lines,
		fmt.Sprintf("<b>📊 %s Day %d</b>", stats.Month.Short, stats.Month.Day),
		"",
	)

	// rolling week, one unit of slack before the warning marker
	lines = append(lines,
		"<b>This week:</b>",
		fmt.Sprintf("🏃 Cardio: %d/%d %s", stats.Week.Cardio, goals.WeeklyCardio,
			statusMark(stats.Week.Cardio >= goals.WeeklyCardio-1)),
		fmt.Sprintf("🏋️ Strength: %d/%d %s", stats.Week.Strength, goals.WeeklyStrength,
			statusMark(stats.Week.Strength >= goals.WeeklyStrength-1)),
		"",
	)

	lines = append(lines,
		fmt.Sprintf("<b>%s:</b>", stats.Month.Name),
		fmt.Sprintf("🏃 Cardio: %d/%d %s", stats.Month.Cardio, goals.MonthlyCardio,
			statusMark(stats.Month.Cardio >= stats.Month.CardioExpected-1)),
		fmt.Sprintf("🏋️ Strength: %d/%d %s", stats.Month.Strength, goals.MonthlyStrength,
			statusMark(stats.Month.Strength >= stats.Month.StrengthExpected-1)),
	)

	var paceIssues []string
	if stats.Month.CardioPerWeekNeeded > 0 {
		paceIssues = append(paceIssues,
			fmt.Sprintf("Need %s cardio/week to hit monthly goal", trimFloat(stats.Month.CardioPerWeekNeeded)))
	}
	if stats.Month.StrengthPerWeekNeeded > 0 {
		paceIssues = append(paceIssues,
			fmt.Sprintf("Need %s strength/week to hit monthly goal", trimFloat(stats.Month.StrengthPerWeekNeeded)))
	}
	if len(paceIssues) > 0 {
		lines = append(lines, "")
		for _, issue := range paceIssues {
			lines = append(lines, fmt.Sprintf("<i>%s</i>", issue))
		}
	}

	if stats.RestDays >= goals.RestDayWarning {
		lines = append(lines, "")
		if stats.RestDays >= goals.RestDayUrgent {
			lines = append(lines, fmt.Sprintf("😴 <b>%d rest days in a row</b>", stats.RestDays))
		} else {
			lines = append(lines, fmt.Sprintf("😴 %d rest days in a row", stats.RestDays))
		}
	}

	lines = append(lines, "")
	lines = append(lines, weightLines(stats.Weight, goals)...)

	if stats.Week.FallingOffCardio || stats.Week.FallingOffStrength {
		var falling []string
		if stats.Week.FallingOffCardio {
			falling = append(falling, "cardio")
		}
		if stats.Week.FallingOffStrength {
			falling = append(falling, "strength")
		}
		lines = append(lines,
			"",
			fmt.Sprintf("⏳ Falling off tomorrow: %s from 8 days ago", strings.Join(falling, ", ")),
		)
	}

	lines = append(lines,
		"",
		"<b>Today:</b>",
		fmt.Sprintf("→ %s", healthstats.Recommend(stats, goals)),
	)

	return strings.Join(lines, "\n")
}

func weightLines(weight healthstats.WeightStats, goals healthstats.Goals) []string {
	if weight.LatestKg == nil {
		return []string{"⚖️ --"}
	}

	if weight.DaysSinceWeighIn != nil && *weight.DaysSinceWeighIn >= goals.WeighInReminderDays {
		return []string{fmt.Sprintf("⚖️ <b>No weigh-in for %d days</b>", *weight.DaysSinceWeighIn)}
	}

	lines := []string{fmt.Sprintf("⚖️ %s kg", trimFloat(*weight.LatestKg))}

	var changes []string
	if weight.Change7dKg != nil {
		changes = append(changes, fmt.Sprintf("%s %s kg (7d)",
			changeArrow(*weight.Change7dKg), trimFloat(abs(*weight.Change7dKg))))
	}
	if weight.Change30dKg != nil {
		changes = append(changes, fmt.Sprintf("%s %s kg (30d)",
			changeArrow(*weight.Change30dKg), trimFloat(abs(*weight.Change30dKg))))
	}
	if len(changes) > 0 {
		lines = append(lines, "   "+strings.Join(changes, "  •  "))
	}

	return lines
}

func statusMark(onTrack bool) string {
	if onTrack {
		return "✓"
	}
	return "⚠️"
}

func changeArrow(change float64) string {
	switch {
	case change < 0:
		return "↓"
	case change > 0:
		return "↑"
	default:
		return "→"
	}
}

// trimFloat renders with 1 decimal, dropping a trailing ".0" so whole
// kilos read naturally.
func trimFloat(x float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(x, 'f', 1, 64), ".0")
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
