package importer

import (
	"context"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/ptaljaard1985/health-dashboard/internal/garmin"
	"github.com/ptaljaard1985/health-dashboard/internal/health"
	"github.com/ptaljaard1985/health-dashboard/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const maxNotesLen = 2000

type store interface {
	AddActivity(ctx context.Context, activity health.Activity) (created bool, err error)
	AddWeighIn(ctx context.Context, weighIn health.WeighIn) (created bool, err error)
	GarminActivityIDs(ctx context.Context) (map[string]struct{}, error)
	WeighInDates(ctx context.Context) (map[string]struct{}, error)
}

// Importer writes upstream records into the store, skipping what is
// already there. A single bad record never aborts the batch: it is
// logged and the remaining records are still processed.
type Importer struct {
	classifier *garmin.Classifier
	store      store
}

func New(classifier *garmin.Classifier, store store) *Importer {
	return &Importer{
		classifier: classifier,
		store:      store,
	}
}

type Result struct {
	ActivitiesCreated int `json:"activitiesCreated"`
	ActivitiesSkipped int `json:"activitiesSkipped"`
	WeightsCreated    int `json:"weightsCreated"`
	WeightsSkipped    int `json:"weightsSkipped"`
}

// Run imports the given upstream payloads. The returned error covers only
// the initial reads of the existing-record sets; per-record persistence
// failures are logged and counted out.
func (i *Importer) Run(
	ctx context.Context,
	activities []garmin.RawActivity,
	weights []garmin.WeightEntry,
) (result Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "importer.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	existingIDs, err := i.store.GarminActivityIDs(ctx)
	if err != nil {
		return Result{}, err
	}
	existingWeighInDates, err := i.store.WeighInDates(ctx)
	if err != nil {
		return Result{}, err
	}
	log.Infof("found %d existing garmin entries and %d existing weigh-ins", len(existingIDs), len(existingWeighInDates))

	for _, raw := range activities {
		garminID := strconv.FormatInt(raw.ActivityID, 10)

		if _, seen := existingIDs[garminID]; seen {
			result.ActivitiesSkipped++
			continue
		}

		typeKey := raw.TypeKey()
		if i.classifier.ShouldSkip(typeKey) {
			continue
		}

		activity, buildErr := i.buildActivity(raw, garminID, typeKey)
		if buildErr != nil {
			log.Errorf("skip activity %s: %s", garminID, buildErr)
			continue
		}

		created, addErr := i.store.AddActivity(ctx, activity)
		if addErr != nil {
			log.Errorf("failed to create activity entry %s: %s", garminID, addErr)
			continue
		}
		if !created {
			result.ActivitiesSkipped++
			continue
		}

		log.Infof("created activity: %s (%s)", activity.Exercise, activity.Date.Format(health.DateFormat))
		result.ActivitiesCreated++
	}

	for _, entry := range weights {
		if _, seen := existingWeighInDates[entry.CalendarDate]; seen {
			result.WeightsSkipped++
			continue
		}

		day, dayErr := entry.Date()
		if dayErr != nil {
			log.Errorf("skip weight entry: %s", dayErr)
			continue
		}

		weighIn := health.WeighIn{
			Date:     day,
			WeightKg: garmin.GramsToKg(entry.WeightGrams),
		}

		created, addErr := i.store.AddWeighIn(ctx, weighIn)
		if addErr != nil {
			log.Errorf("failed to create weight entry for %s: %s", entry.CalendarDate, addErr)
			continue
		}
		if !created {
			result.WeightsSkipped++
			continue
		}

		log.Infof("created weight entry: %.2f kg (%s)", weighIn.WeightKg, entry.CalendarDate)
		result.WeightsCreated++
	}

	span.SetAttributes(
		attribute.Int("activities_created", result.ActivitiesCreated),
		attribute.Int("activities_skipped", result.ActivitiesSkipped),
		attribute.Int("weights_created", result.WeightsCreated),
		attribute.Int("weights_skipped", result.WeightsSkipped),
	)
	return result, nil
}

func (i *Importer) buildActivity(raw garmin.RawActivity, garminID, typeKey string) (health.Activity, error) {
	day, err := raw.Date()
	if err != nil {
		return health.Activity{}, err
	}

	tracked := i.classifier.Classify(typeKey)

	name := raw.ActivityName
	if name == "" {
		name = string(tracked)
	}

	activity := health.Activity{
		Exercise:         name,
		Date:             day,
		Type:             tracked,
		GarminActivityID: garminID,
		Notes:            truncate(raw.Description, maxNotesLen),
	}

	if raw.Duration != nil {
		minutes := garmin.SecondsToMinutes(*raw.Duration)
		activity.DurationMinutes = &minutes
	}
	if raw.Distance != nil {
		km := garmin.MetersToKm(*raw.Distance)
		activity.DistanceKm = &km
	}
	if raw.Calories != nil {
		calories := int(math.Round(*raw.Calories))
		activity.Calories = &calories
	}
	if raw.AverageHR != nil {
		avgHR := int(math.Round(*raw.AverageHR))
		activity.AvgHeartRate = &avgHR
	}
	if raw.MaxHR != nil {
		maxHR := int(math.Round(*raw.MaxHR))
		activity.MaxHeartRate = &maxHR
	}

	return activity, nil
}

// truncate cuts s to at most maxLen bytes without splitting a rune.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	for maxLen > 0 && !utf8.RuneStart(s[maxLen]) {
		maxLen--
	}
	return s[:maxLen]
}
