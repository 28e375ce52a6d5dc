package dashboard

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ptaljaard1985/health-dashboard/internal/health"
	"github.com/ptaljaard1985/health-dashboard/internal/healthstats"
)

const recentWeighIns = 10

// Input carries everything one render needs. Activities and WeighIns are
// the full history, newest first, as the repo returns them.
type Input struct {
	Stats      *healthstats.Stats
	Goals      healthstats.Goals
	Activities []health.Activity
	WeighIns   []health.WeighIn
	Now        time.Time
}

// Renderer produces the self-contained HTML dashboard. The output embeds
// all data inline (Chart.js datasets, calendar dates) so the file can be
// opened directly from disk.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("dashboard").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse dashboard template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, in Input) error {
	vm, err := buildViewModel(in)
	if err != nil {
		return err
	}
	if err := r.tmpl.Execute(w, vm); err != nil {
		return fmt.Errorf("execute dashboard template: %w", err)
	}
	return nil
}

type viewModel struct {
	Generated string

	CurrentStreak int
	LongestStreak int

	WeekDays []weekDayCell

	WeekLabel      string
	Cardio7d       int
	Strength7d     int
	CardioGoal     int
	StrengthGoal   int
	Cardio7dClass  string
	Strength7dClass string
	Hours7d        string
	Change7d       string
	Change7dClass  string
	RestDays7d     int
	WeekActivities []activityRow

	Months []monthCard

	LatestWeight    string
	AvgPerWeek      string
	AvgPerWeekClass string
	Change30d       string
	Change30dWord   string
	Change30dClass  string
	TargetWeight    string
	KgToGo          string
	Projection      string
	WeighIns        []weighInRow

	YTD healthstats.YTDBreakdown

	ActivityLog []activityRow

	WeightJSON        template.JS
	ExerciseDatesJSON template.JS
}

type weekDayCell struct {
	Label string
	Done  bool
	Today bool
}

type monthCard struct {
	SectionID     string
	Name          string
	Cardio        int
	Strength      int
	CardioGoal    int
	StrengthGoal  int
	CardioClass   string
	StrengthClass string
	Hours         int
	WeightChange  string
	WeightClass   string
	RestDays      int
	Open          bool
}

type activityRow struct {
	Name     string
	Date     string
	Duration string
	Type     string
	RowClass string
}

type weighInRow struct {
	Date        string
	Weight      string
	ChangeArrow string
	ChangeValue string
	ChangeClass string
}

type chartPoint struct {
	Date       string  `json:"date"`
	Weight     float64 `json:"weight"`
	RollingAvg float64 `json:"rollingAvg"`
}

func buildViewModel(in Input) (*viewModel, error) {
	stats := in.Stats
	goals := in.Goals

	vm := &viewModel{
		Generated:     in.Now.Format("2006-01-02 15:04"),
		CurrentStreak: stats.CurrentStreak,
		LongestStreak: stats.LongestStreak,

		WeekLabel:       weekLabel(stats.Week),
		Cardio7d:        stats.Week.Cardio,
		Strength7d:      stats.Week.Strength,
		CardioGoal:      goals.WeeklyCardio,
		StrengthGoal:    goals.WeeklyStrength,
		Cardio7dClass:   countClass(stats.Week.Cardio, goals.WeeklyCardio),
		Strength7dClass: countClass(stats.Week.Strength, goals.WeeklyStrength),
		Hours7d:         format1(stats.Week.TotalHours),
		RestDays7d:      stats.Week.RestDays,

		LatestWeight: "--",
		AvgPerWeek:   "--",
		Change30d:    "--",
		TargetWeight: format1(goals.TargetWeightKg),
		KgToGo:       "--",

		YTD: stats.YearToDate,
	}

	vm.WeekDays = weekDayCells(stats.ThisWeekDays, in.Now)
	vm.WeekActivities = activityRows(stats.Week.Activities, false)
	vm.Months = monthCards(stats.Months, goals)
	vm.WeighIns = weighInRows(in.WeighIns)
	vm.ActivityLog = yearActivityLog(in.Activities, in.Now)

	vm.Change7d = "--"
	if c := stats.Weight.Change7dKg; c != nil {
		vm.Change7d = signedKg(*c)
		vm.Change7dClass = deltaClass(*c)
	}
	if w := stats.Weight.LatestKg; w != nil {
		vm.LatestWeight = format1(*w)
	}
	if c := stats.Weight.Change30dKg; c != nil {
		vm.Change30d = format1(abs(*c))
		vm.Change30dClass = deltaClass(*c)
		if *c < 0 {
			vm.Change30dWord = "lost"
		} else if *c > 0 {
			vm.Change30dWord = "gained"
		}
	}
	if k := stats.Weight.KgToTarget; k != nil {
		vm.KgToGo = format1(*k)
	}
	if d := stats.Weight.ProjectedTargetDate; d != nil {
		vm.Projection = d.Format("Jan 2006")
	}
	if rate, ok := avgLossPerWeek(stats.Weight.Series, in.Now); ok {
		vm.AvgPerWeek = strconv.FormatFloat(rate, 'f', 2, 64)
		if rate > 0 {
			vm.AvgPerWeekClass = "text-green-400"
		} else if rate < 0 {
			vm.AvgPerWeekClass = "text-red-400"
		} else {
			vm.AvgPerWeekClass = "text-gray-400"
		}
	}

	weightJSON, err := json.Marshal(chartPoints(stats.Weight.Series))
	if err != nil {
		return nil, fmt.Errorf("marshal weight series: %w", err)
	}
	vm.WeightJSON = template.JS(weightJSON)

	datesJSON, err := json.Marshal(distinctDates(in.Activities))
	if err != nil {
		return nil, fmt.Errorf("marshal activity dates: %w", err)
	}
	vm.ExerciseDatesJSON = template.JS(datesJSON)

	return vm, nil
}

func weekLabel(week healthstats.WeekWindow) string {
	return week.From.Format("Mon 2 Jan") + " – " + week.To.Format("Mon 2 Jan")
}

// countClass picks the traffic-light color for a count against its goal:
// green at goal, yellow within one unit of slack, red below.
func countClass(count, goal int) string {
	switch {
	case count >= goal:
		return "text-green-400"
	case count >= goal-1:
		return "text-yellow-400"
	default:
		return "text-red-400"
	}
}

// deltaClass colors a weight change: losing is green, gaining red.
func deltaClass(change float64) string {
	switch {
	case change < 0:
		return "text-green-400"
	case change > 0:
		return "text-red-400"
	default:
		return "text-gray-400"
	}
}

func weekDayCells(done []time.Weekday, now time.Time) []weekDayCell {
	doneSet := make(map[time.Weekday]struct{}, len(done))
	for _, d := range done {
		doneSet[d] = struct{}{}
	}

	// Mon-start week to match every other weekly view.
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	cells := make([]weekDayCell, 0, len(order))
	for _, d := range order {
		_, isDone := doneSet[d]
		cells = append(cells, weekDayCell{
			Label: d.String()[:3],
			Done:  isDone,
			Today: d == now.Weekday(),
		})
	}
	return cells
}

func monthCards(months []healthstats.MonthSummary, goals healthstats.Goals) []monthCard {
	cards := make([]monthCard, 0, len(months))
	for i, m := range months {
		card := monthCard{
			SectionID:     fmt.Sprintf("month-%d-%d", m.Year, int(m.Month)),
			Name:          m.Name,
			Cardio:        m.Cardio,
			Strength:      m.Strength,
			CardioGoal:    goals.MonthlyCardio,
			StrengthGoal:  goals.MonthlyStrength,
			CardioClass:   monthCountClass(m.Cardio, goals.MonthlyCardio),
			StrengthClass: monthCountClass(m.Strength, goals.MonthlyStrength),
			Hours:         m.Hours,
			WeightChange:  "--",
			WeightClass:   "text-gray-400",
			RestDays:      m.RestDays,
			Open:          i == 0,
		}
		if m.WeightChangeKg != nil {
			card.WeightChange = signedKg(*m.WeightChangeKg)
			card.WeightClass = deltaClass(*m.WeightChangeKg)
		}
		cards = append(cards, card)
	}
	return cards
}

// monthCountClass is looser than the weekly one: yellow kicks in at three
// quarters of the goal.
func monthCountClass(count, goal int) string {
	switch {
	case count >= goal:
		return "text-green-400"
	case count*4 >= goal*3:
		return "text-yellow-400"
	default:
		return "text-red-400"
	}
}

func activityRows(activities []health.Activity, colorByType bool) []activityRow {
	rows := make([]activityRow, 0, len(activities))
	for _, a := range activities {
		row := activityRow{
			Name:     a.Exercise,
			Date:     a.Date.Format("Mon 02 Jan"),
			Type:     string(a.Type),
			RowClass: "bg-white/5",
		}
		if row.Name == "" {
			row.Name = string(a.Type)
		}
		if a.DurationMinutes != nil && *a.DurationMinutes > 0 {
			row.Duration = format1(*a.DurationMinutes) + " min"
		}
		if colorByType {
			if a.Type.IsStrength() {
				row.RowClass = "bg-green-500/20"
			} else if a.Type.IsCardio() {
				row.RowClass = "bg-orange-500/20"
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// yearActivityLog lists the reference year's activities oldest first,
// color-coded by category.
func yearActivityLog(activities []health.Activity, now time.Time) []activityRow {
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	var ytd []health.Activity
	for _, a := range activities {
		if !a.Date.Before(yearStart) {
			ytd = append(ytd, a)
		}
	}
	// repo order is newest first, the log reads bottom-up
	for i, j := 0, len(ytd)-1; i < j; i, j = i+1, j-1 {
		ytd[i], ytd[j] = ytd[j], ytd[i]
	}
	return activityRows(ytd, true)
}

func weighInRows(weighIns []health.WeighIn) []weighInRow {
	n := len(weighIns)
	if n > recentWeighIns {
		n = recentWeighIns
	}
	rows := make([]weighInRow, 0, n)
	for i := 0; i < n; i++ {
		row := weighInRow{
			Date:   weighIns[i].Date.Format("Mon 02 Jan"),
			Weight: format1(weighIns[i].WeightKg),
		}
		if i+1 < len(weighIns) {
			change := weighIns[i].WeightKg - weighIns[i+1].WeightKg
			switch {
			case change < 0:
				row.ChangeArrow = "↓"
				row.ChangeClass = "text-green-400"
			case change > 0:
				row.ChangeArrow = "↑"
				row.ChangeClass = "text-red-400"
			default:
				row.ChangeArrow = "→"
				row.ChangeClass = "text-gray-400"
			}
			row.ChangeValue = format1(abs(change))
		}
		rows = append(rows, row)
	}
	return rows
}

// avgLossPerWeek is the mean kg lost per week between the first charted
// weigh-in and the latest one. Positive means losing.
func avgLossPerWeek(series []healthstats.WeightPoint, now time.Time) (float64, bool) {
	if len(series) < 2 {
		return 0, false
	}
	first := series[0]
	last := series[len(series)-1]
	days := last.Date.Sub(first.Date).Hours() / 24
	if days < 1 {
		return 0, false
	}
	lost := first.WeightKg - last.WeightKg
	rate := lost / (days / 7)
	return math.Round(rate*100) / 100, true
}

func chartPoints(series []healthstats.WeightPoint) []chartPoint {
	points := make([]chartPoint, 0, len(series))
	for _, p := range series {
		points = append(points, chartPoint{
			Date:       p.Date.Format(health.DateFormat),
			Weight:     p.WeightKg,
			RollingAvg: p.RollingAvgKg,
		})
	}
	return points
}

func distinctDates(activities []health.Activity) []string {
	seen := make(map[string]struct{}, len(activities))
	dates := make([]string, 0, len(activities))
	for _, a := range activities {
		key := a.Date.Format(health.DateFormat)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		dates = append(dates, key)
	}
	return dates
}

// format1 renders with one decimal, dropping a trailing ".0".
func format1(x float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(x, 'f', 1, 64), ".0")
}

func signedKg(x float64) string {
	if x > 0 {
		return "+" + format1(x)
	}
	return format1(x)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
