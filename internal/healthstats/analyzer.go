package healthstats

import (
	"math"
	"sort"
	"time"

	"github.com/ptaljaard1985/health-dashboard/internal/health"
)

// All functions here are pure: full history in, derived numbers out,
// relative to a reference "today". No I/O, no clock reads.

// Compute derives the full statistics bundle for both report consumers.
func Compute(
	activities []health.Activity,
	weighIns []health.WeighIn,
	today time.Time,
	goals Goals,
) *Stats {
	today = health.Day(today)

	stats := &Stats{
		Today:  today,
		Week:   RollingWeek(activities, today),
		Month:  CurrentMonthPace(activities, today, goals),
		Months: MonthSummaries(activities, weighIns, today),
		Weight: weightStats(weighIns, today, goals),
	}

	stats.CurrentStreak, stats.LongestStreak = Streaks(activities, today)
	stats.RestDays = RestDaysCount(activities, today)

	stats.TotalWorkouts = len(activities)
	var withDuration int
	for _, a := range activities {
		if a.DurationMinutes != nil && *a.DurationMinutes > 0 {
			stats.TotalDurationMinutes += *a.DurationMinutes
			withDuration++
		}
	}
	if withDuration > 0 {
		stats.AvgDurationMinutes = round1(stats.TotalDurationMinutes / float64(withDuration))
	}

	stats.WeeklyCounts = WeeklyCounts(activities, today, 8)
	stats.Breakdown = ActivityBreakdown(activities)
	stats.ThisWeekDays, stats.ThisWeekWorkouts = thisWeek(activities, today)
	stats.YearToDate = YearToDate(activities, today)

	isCardio := func(a health.Activity) bool { return a.Type.IsCardio() }
	isStrength := func(a health.Activity) bool { return a.Type.IsStrength() }
	stats.CardioInLast2Days = HasActivityInLastNDays(activities, isCardio, 2, today)
	stats.StrengthInLast2Days = HasActivityInLastNDays(activities, isStrength, 2, today)
	stats.CardioInLast3Days = HasActivityInLastNDays(activities, isCardio, 3, today)
	stats.StrengthInLast3Days = HasActivityInLastNDays(activities, isStrength, 3, today)

	return stats
}

// Streaks returns the current and longest run of consecutive activity
// days. The current streak survives one rest day: it only breaks once a
// full day has elapsed after the last recorded activity.
func Streaks(activities []health.Activity, today time.Time) (current, longest int) {
	dates := distinctDatesAsc(activities)
	if len(dates) == 0 {
		return 0, 0
	}

	longest = 1
	run := 1
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i-1], dates[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	if daysBetween(dates[len(dates)-1], health.Day(today)) > 1 {
		return 0, longest
	}
	return run, longest
}

// RollingWeek aggregates the window [today-7, today-1].
func RollingWeek(activities []health.Activity, today time.Time) WeekWindow {
	today = health.Day(today)
	week := WeekWindow{
		From: today.AddDate(0, 0, -7),
		To:   today.AddDate(0, 0, -1),
	}
	fallingOffDay := today.AddDate(0, 0, -8)

	workoutDates := make(map[string]struct{})
	var totalMinutes float64
	for _, a := range activities {
		day := health.Day(a.Date)

		if day.Equal(fallingOffDay) {
			if a.Type.IsCardio() {
				week.FallingOffCardio = true
			}
			if a.Type.IsStrength() {
				week.FallingOffStrength = true
			}
		}

		if day.Before(week.From) || day.After(week.To) {
			continue
		}

		week.Activities = append(week.Activities, a)
		workoutDates[day.Format(health.DateFormat)] = struct{}{}
		if a.Type.IsCardio() {
			week.Cardio++
		}
		if a.Type.IsStrength() {
			week.Strength++
		}
		if a.DurationMinutes != nil && *a.DurationMinutes > 0 {
			totalMinutes += *a.DurationMinutes
		}
	}

	week.TotalHours = round1(totalMinutes / 60)
	week.RestDays = 7 - len(workoutDates)
	return week
}

// CurrentMonthPace measures the running calendar month against the
// pro-rata expectation of the monthly goals.
func CurrentMonthPace(activities []health.Activity, today time.Time, goals Goals) MonthPace {
	today = health.Day(today)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	pace := MonthPace{
		Name:        today.Format("January"),
		Short:       today.Format("Jan"),
		Day:         today.Day(),
		DaysInMonth: daysInMonth,
	}

	for _, a := range activities {
		day := health.Day(a.Date)
		if day.Before(monthStart) || day.After(today) {
			continue
		}
		if a.Type.IsCardio() {
			pace.Cardio++
		}
		if a.Type.IsStrength() {
			pace.Strength++
		}
	}

	progress := float64(pace.Day) / float64(daysInMonth)
	pace.CardioExpected = int(math.Round(float64(goals.MonthlyCardio) * progress))
	pace.StrengthExpected = int(math.Round(float64(goals.MonthlyStrength) * progress))

	// one unit of slack before flagging "behind": intentional policy,
	// not a rounding artifact
	pace.CardioBehind = pace.Cardio < pace.CardioExpected-1
	pace.StrengthBehind = pace.Strength < pace.StrengthExpected-1

	remainingDays := daysInMonth - pace.Day
	if remainingDays > 0 {
		weeksLeft := float64(remainingDays) / 7
		if pace.CardioBehind {
			pace.CardioPerWeekNeeded = round1(float64(goals.MonthlyCardio-pace.Cardio) / weeksLeft)
		}
		if pace.StrengthBehind {
			pace.StrengthPerWeekNeeded = round1(float64(goals.MonthlyStrength-pace.Strength) / weeksLeft)
		}
	}

	return pace
}

// MonthSummaries returns one row per calendar month with activity data,
// newest first.
func MonthSummaries(
	activities []health.Activity,
	weighIns []health.WeighIn,
	today time.Time,
) []MonthSummary {
	today = health.Day(today)

	type yearMonth struct {
		year  int
		month time.Month
	}
	monthsSeen := make(map[yearMonth]struct{})
	for _, a := range activities {
		monthsSeen[yearMonth{a.Date.Year(), a.Date.Month()}] = struct{}{}
	}

	months := make([]yearMonth, 0, len(monthsSeen))
	for ym := range monthsSeen {
		months = append(months, ym)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].year != months[j].year {
			return months[i].year > months[j].year
		}
		return months[i].month > months[j].month
	})

	sortedWeighIns := weighInsAsc(weighIns)

	summaries := make([]MonthSummary, 0, len(months))
	for _, ym := range months {
		monthStart := time.Date(ym.year, ym.month, 1, 0, 0, 0, 0, today.Location())
		nextMonth := monthStart.AddDate(0, 1, 0)
		daysInMonth := nextMonth.AddDate(0, 0, -1).Day()
		isCurrent := ym.year == today.Year() && ym.month == today.Month()

		summary := MonthSummary{
			Year:    ym.year,
			Month:   ym.month,
			Name:    monthStart.Format("January 2006"),
			Current: isCurrent,
		}

		workoutDates := make(map[string]struct{})
		var totalMinutes float64
		for _, a := range activities {
			day := health.Day(a.Date)
			if day.Before(monthStart) || !day.Before(nextMonth) {
				continue
			}
			workoutDates[day.Format(health.DateFormat)] = struct{}{}
			if a.Type.IsCardio() {
				summary.Cardio++
			}
			if a.Type.IsStrength() {
				summary.Strength++
			}
			if a.DurationMinutes != nil && *a.DurationMinutes > 0 {
				totalMinutes += *a.DurationMinutes
			}
		}
		summary.Hours = int(math.Round(totalMinutes / 60))

		if isCurrent {
			summary.RestDays = today.Day() - len(workoutDates)
		} else {
			summary.RestDays = daysInMonth - len(workoutDates)
		}

		summary.WeightChangeKg = monthWeightChange(sortedWeighIns, monthStart, nextMonth)
		summaries = append(summaries, summary)
	}

	return summaries
}

// monthWeightChange compares the last weight of the month to the last
// weight of the nearest preceding month with data. For the very first
// tracked month there is no earlier data, so the in-month first
// observation approximates the baseline.
func monthWeightChange(sortedWeighIns []health.WeighIn, monthStart, nextMonth time.Time) *float64 {
	var first, last *health.WeighIn
	var lastBefore *health.WeighIn
	for i := range sortedWeighIns {
		w := sortedWeighIns[i]
		day := health.Day(w.Date)
		if day.Before(monthStart) {
			lastBefore = &sortedWeighIns[i]
			continue
		}
		if !day.Before(nextMonth) {
			break
		}
		if first == nil {
			first = &sortedWeighIns[i]
		}
		last = &sortedWeighIns[i]
	}

	if last == nil {
		return nil
	}
	if lastBefore != nil {
		change := round1(last.WeightKg - lastBefore.WeightKg)
		return &change
	}
	change := round1(last.WeightKg - first.WeightKg)
	return &change
}

// WeightSeries returns the weigh-ins oldest first, each with its
// trailing 10-calendar-day average: observations dated in (D-10, D],
// lower bound exclusive. A lone observation averages to itself.
func WeightSeries(weighIns []health.WeighIn) []WeightPoint {
	sorted := weighInsAsc(weighIns)

	points := make([]WeightPoint, 0, len(sorted))
	for i, w := range sorted {
		day := health.Day(w.Date)
		windowStart := day.AddDate(0, 0, -10)

		var sum float64
		var count int
		for j := 0; j <= i; j++ {
			other := health.Day(sorted[j].Date)
			if other.After(windowStart) && !other.After(day) {
				sum += sorted[j].WeightKg
				count++
			}
		}

		points = append(points, WeightPoint{
			Date:         day,
			WeightKg:     w.WeightKg,
			RollingAvgKg: round1(sum / float64(count)),
		})
	}

	return points
}

// ProjectedDaysToTarget projects how many days until the target weight is
// reached at the given 30-day rate. No projection is produced unless the
// rate is strictly negative and there is actually weight to lose: a
// gaining trend never projects reaching a lower target.
func ProjectedDaysToTarget(currentKg, targetKg, change30dKg float64) (int, bool) {
	if change30dKg >= 0 || currentKg <= targetKg {
		return 0, false
	}
	monthlyRate := math.Abs(change30dKg)
	days := int(math.Round((currentKg - targetKg) / monthlyRate * 30))
	return days, true
}

// RestDaysCount returns the days elapsed since the most recent activity,
// 0 when there is one today.
func RestDaysCount(activities []health.Activity, today time.Time) int {
	dates := distinctDatesAsc(activities)
	if len(dates) == 0 {
		return 0
	}
	days := daysBetween(dates[len(dates)-1], health.Day(today))
	if days < 0 {
		return 0
	}
	return days
}

// HasActivityInLastNDays reports whether any matching activity is dated
// strictly after today-nDays (so today itself counts).
func HasActivityInLastNDays(
	activities []health.Activity,
	match func(health.Activity) bool,
	nDays int,
	today time.Time,
) bool {
	cutoff := health.Day(today).AddDate(0, 0, -nDays)
	for _, a := range activities {
		if health.Day(a.Date).After(cutoff) && match(a) {
			return true
		}
	}
	return false
}

// WeeklyCounts returns workout counts for the trailing numWeeks
// Monday-start weeks, oldest first, including empty weeks.
func WeeklyCounts(activities []health.Activity, today time.Time, numWeeks int) []WeekCount {
	week2count := make(map[string]int)
	for _, a := range activities {
		week2count[weekStart(a.Date).Format(health.DateFormat)]++
	}

	counts := make([]WeekCount, 0, numWeeks)
	thisWeekStart := weekStart(today)
	for i := numWeeks - 1; i >= 0; i-- {
		start := thisWeekStart.AddDate(0, 0, -7*i)
		counts = append(counts, WeekCount{
			WeekStart: start,
			Label:     start.Format("02 Jan"),
			Count:     week2count[start.Format(health.DateFormat)],
		})
	}
	return counts
}

// ActivityBreakdown returns per-type counts and total minutes, most
// frequent first.
func ActivityBreakdown(activities []health.Activity) []TypeBreakdown {
	type2breakdown := make(map[health.TrackedType]*TypeBreakdown)
	for _, a := range activities {
		b, ok := type2breakdown[a.Type]
		if !ok {
			b = &TypeBreakdown{Type: a.Type}
			type2breakdown[a.Type] = b
		}
		b.Count++
		if a.DurationMinutes != nil && *a.DurationMinutes > 0 {
			b.TotalMinutes += *a.DurationMinutes
		}
	}

	breakdown := make([]TypeBreakdown, 0, len(type2breakdown))
	for _, b := range type2breakdown {
		breakdown = append(breakdown, *b)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Type < breakdown[j].Type
	})
	return breakdown
}

// YearToDate groups activity counts since Jan 1 of the reference year.
func YearToDate(activities []health.Activity, today time.Time) YTDBreakdown {
	yearStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())

	var ytd YTDBreakdown
	for _, a := range activities {
		if health.Day(a.Date).Before(yearStart) {
			continue
		}
		switch a.Type {
		case health.TypeRun, health.TypeTrailRun:
			ytd.Running++
		case health.TypeIndoorCycle:
			ytd.Cycling++
		case health.TypeWalk, health.TypeHike, health.TypeRucking:
			ytd.WalkHike++
		case health.TypeTennis, health.TypePadel:
			ytd.Racquet++
		case health.TypeKettlebells:
			ytd.Strength++
		}
	}
	return ytd
}

func weightStats(weighIns []health.WeighIn, today time.Time, goals Goals) WeightStats {
	stats := WeightStats{
		Series: WeightSeries(weighIns),
	}
	if len(stats.Series) == 0 {
		return stats
	}

	latest := stats.Series[len(stats.Series)-1]
	stats.LatestKg = &latest.WeightKg
	latestDate := latest.Date
	stats.LatestDate = &latestDate

	daysSince := daysBetween(latest.Date, health.Day(today))
	stats.DaysSinceWeighIn = &daysSince

	stats.Change7dKg = changeSince(stats.Series, latest.WeightKg, health.Day(today).AddDate(0, 0, -7))
	stats.Change30dKg = changeSince(stats.Series, latest.WeightKg, health.Day(today).AddDate(0, 0, -30))

	if goals.TargetWeightKg > 0 {
		toGo := round1(latest.WeightKg - goals.TargetWeightKg)
		stats.KgToTarget = &toGo

		if stats.Change30dKg != nil {
			if days, ok := ProjectedDaysToTarget(latest.WeightKg, goals.TargetWeightKg, *stats.Change30dKg); ok {
				stats.ProjectedDaysToTarget = &days
				projected := health.Day(today).AddDate(0, 0, days)
				stats.ProjectedTargetDate = &projected
			}
		}
	}

	return stats
}

// changeSince compares the latest weight to the newest observation dated
// at or before the cutoff; nil when history does not reach back that far.
func changeSince(series []WeightPoint, latestKg float64, cutoff time.Time) *float64 {
	for i := len(series) - 1; i >= 0; i-- {
		if !series[i].Date.After(cutoff) {
			change := round1(latestKg - series[i].WeightKg)
			return &change
		}
	}
	return nil
}

func thisWeek(activities []health.Activity, today time.Time) ([]time.Weekday, int) {
	start := weekStart(today)

	daysSeen := make(map[time.Weekday]struct{})
	workouts := 0
	for _, a := range activities {
		day := health.Day(a.Date)
		if day.Before(start) || day.After(health.Day(today)) {
			continue
		}
		workouts++
		daysSeen[day.Weekday()] = struct{}{}
	}

	days := make([]time.Weekday, 0, len(daysSeen))
	for d := range daysSeen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		// Monday-start ordering
		return (int(days[i])+6)%7 < (int(days[j])+6)%7
	})
	return days, workouts
}

// weekStart truncates to the Monday starting t's week.
func weekStart(t time.Time) time.Time {
	t = health.Day(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

func distinctDatesAsc(activities []health.Activity) []time.Time {
	seen := make(map[string]struct{}, len(activities))
	var dates []time.Time
	for _, a := range activities {
		day := health.Day(a.Date)
		key := day.Format(health.DateFormat)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func weighInsAsc(weighIns []health.WeighIn) []health.WeighIn {
	sorted := make([]health.WeighIn, len(weighIns))
	copy(sorted, weighIns)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
	return sorted
}

// daysBetween counts calendar days from one day to another, robust to
// DST shifting a day to 23 or 25 hours.
func daysBetween(from, to time.Time) int {
	return int(math.Round(health.Day(to).Sub(health.Day(from)).Hours() / 24))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
