package importer_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ptaljaard1985/health-dashboard/internal/garmin"
	"github.com/ptaljaard1985/health-dashboard/internal/health"
	"github.com/ptaljaard1985/health-dashboard/internal/importer"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type storeMock struct {
	activities map[string]health.Activity
	weighIns   map[string]health.WeighIn

	addActivityErr error
	addWeighInErr  error
	idsErr         error
	datesErr       error
}

func newStoreMock() *storeMock {
	return &storeMock{
		activities: make(map[string]health.Activity),
		weighIns:   make(map[string]health.WeighIn),
	}
}

func (m *storeMock) AddActivity(_ context.Context, activity health.Activity) (bool, error) {
	if m.addActivityErr != nil {
		return false, m.addActivityErr
	}
	if _, exists := m.activities[activity.GarminActivityID]; exists {
		return false, nil
	}
	m.activities[activity.GarminActivityID] = activity
	return true, nil
}

func (m *storeMock) AddWeighIn(_ context.Context, weighIn health.WeighIn) (bool, error) {
	if m.addWeighInErr != nil {
		return false, m.addWeighInErr
	}
	key := weighIn.Date.Format(health.DateFormat)
	if _, exists := m.weighIns[key]; exists {
		return false, nil
	}
	m.weighIns[key] = weighIn
	return true, nil
}

func (m *storeMock) GarminActivityIDs(_ context.Context) (map[string]struct{}, error) {
	if m.idsErr != nil {
		return nil, m.idsErr
	}
	ids := make(map[string]struct{}, len(m.activities))
	for id := range m.activities {
		ids[id] = struct{}{}
	}
	return ids, nil
}

func (m *storeMock) WeighInDates(_ context.Context) (map[string]struct{}, error) {
	if m.datesErr != nil {
		return nil, m.datesErr
	}
	dates := make(map[string]struct{}, len(m.weighIns))
	for date := range m.weighIns {
		dates[date] = struct{}{}
	}
	return dates, nil
}

func rawActivity(id int64, typeKey, startTime string) garmin.RawActivity {
	duration := float64(gofakeit.Number(600, 7200))
	return garmin.RawActivity{
		ActivityID:     id,
		ActivityName:   gofakeit.Sentence(3),
		StartTimeLocal: startTime,
		ActivityType:   garmin.ActivityTypeRef{TypeKey: typeKey},
		Duration:       &duration,
	}
}

func TestImporter_Run(t *testing.T) {
	ctx := context.Background()
	store := newStoreMock()
	imp := importer.New(garmin.NewClassifier(nil), store)

	activities := []garmin.RawActivity{
		rawActivity(1001, "running", "2026-03-10 07:30:00"),
		rawActivity(1002, "strength_training", "2026-03-11 18:00:00"),
		rawActivity(1003, "sleep", "2026-03-11 22:00:00"), // skip list, uncounted
	}
	weights := []garmin.WeightEntry{
		{CalendarDate: "2026-03-10", WeightGrams: 92450},
		{CalendarDate: "2026-03-11", WeightGrams: 92100},
	}

	result, err := imp.Run(ctx, activities, weights)
	require.NoError(t, err)

	assert.Equal(t, 2, result.ActivitiesCreated)
	assert.Zero(t, result.ActivitiesSkipped)
	assert.Equal(t, 2, result.WeightsCreated)
	assert.Zero(t, result.WeightsSkipped)

	created, ok := store.activities["1001"]
	require.True(t, ok)
	assert.Equal(t, health.TypeRun, created.Type)
	assert.Equal(t, "2026-03-10", created.Date.Format(health.DateFormat))
	require.NotNil(t, created.DurationMinutes)

	weighIn, ok := store.weighIns["2026-03-10"]
	require.True(t, ok)
	assert.Equal(t, 92.45, weighIn.WeightKg)

	// second run over the same payload is a no-op
	result, err = imp.Run(ctx, activities, weights)
	require.NoError(t, err)
	assert.Zero(t, result.ActivitiesCreated)
	assert.Equal(t, 2, result.ActivitiesSkipped)
	assert.Zero(t, result.WeightsCreated)
	assert.Equal(t, 2, result.WeightsSkipped)
	assert.Len(t, store.activities, 2)
	assert.Len(t, store.weighIns, 2)
}

func TestImporter_Run_BadRecordsDoNotAbortBatch(t *testing.T) {
	ctx := context.Background()
	store := newStoreMock()
	imp := importer.New(garmin.NewClassifier(nil), store)

	activities := []garmin.RawActivity{
		rawActivity(2001, "running", "garbage"), // unparseable date
		rawActivity(2002, "walking", "2026-03-12 09:00:00"),
	}
	weights := []garmin.WeightEntry{
		{CalendarDate: "not-a-date", WeightGrams: 91000},
		{CalendarDate: "2026-03-12", WeightGrams: 91800},
	}

	result, err := imp.Run(ctx, activities, weights)
	require.NoError(t, err)

	assert.Equal(t, 1, result.ActivitiesCreated)
	assert.Zero(t, result.ActivitiesSkipped)
	assert.Equal(t, 1, result.WeightsCreated)
	assert.Zero(t, result.WeightsSkipped)
}

func TestImporter_Run_StoreFailuresPerRecord(t *testing.T) {
	ctx := context.Background()
	store := newStoreMock()
	store.addActivityErr = errors.New("connection reset")
	imp := importer.New(garmin.NewClassifier(nil), store)

	activities := []garmin.RawActivity{
		rawActivity(3001, "running", "2026-03-10 07:30:00"),
	}
	weights := []garmin.WeightEntry{
		{CalendarDate: "2026-03-10", WeightGrams: 92450},
	}

	result, err := imp.Run(ctx, activities, weights)
	require.NoError(t, err)

	// failed activity writes are logged out, weights still land
	assert.Zero(t, result.ActivitiesCreated)
	assert.Equal(t, 1, result.WeightsCreated)
}

func TestImporter_Run_ExistingSetReadFails(t *testing.T) {
	ctx := context.Background()
	store := newStoreMock()
	store.idsErr = errors.New("db down")
	imp := importer.New(garmin.NewClassifier(nil), store)

	_, err := imp.Run(ctx, []garmin.RawActivity{
		rawActivity(4001, "running", "2026-03-10 07:30:00"),
	}, nil)
	require.Error(t, err)
	assert.Empty(t, store.activities)
}

func TestImporter_Run_NameFallsBackToType(t *testing.T) {
	ctx := context.Background()
	store := newStoreMock()
	imp := importer.New(garmin.NewClassifier(nil), store)

	raw := rawActivity(5001, "strength_training", "2026-03-10 07:30:00")
	raw.ActivityName = ""

	_, err := imp.Run(ctx, []garmin.RawActivity{raw}, nil)
	require.NoError(t, err)

	created, ok := store.activities["5001"]
	require.True(t, ok)
	assert.Equal(t, "Kettlebells", created.Exercise)
}

func TestImporter_Run_NotesTruncatedOnRuneBoundary(t *testing.T) {
	ctx := context.Background()
	store := newStoreMock()
	imp := importer.New(garmin.NewClassifier(nil), store)

	// 667 three-byte runes is 2001 bytes, so a byte cut at 2000 would
	// land inside the last rune
	raw := rawActivity(6001, "running", "2026-03-10 07:30:00")
	raw.Description = strings.Repeat("€", 667)

	_, err := imp.Run(ctx, []garmin.RawActivity{raw}, nil)
	require.NoError(t, err)

	created, ok := store.activities["6001"]
	require.True(t, ok)
	assert.True(t, utf8.ValidString(created.Notes))
	assert.Equal(t, strings.Repeat("€", 666), created.Notes)
}
