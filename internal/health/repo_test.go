package health

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRows feeds canned rows and can simulate a connection dropping
// mid-stream, where pgx makes Next return false and parks the cause
// in Err.
type fakeRows struct {
	pgx.Rows
	rows    [][]any
	idx     int
	stopAt  int
	rowsErr error
}

func newFakeRows(rows [][]any) *fakeRows {
	return &fakeRows{rows: rows, stopAt: len(rows)}
}

func (r *fakeRows) failAfter(n int, err error) *fakeRows {
	r.stopAt = n
	r.rowsErr = err
	return r
}

func (r *fakeRows) Next() bool {
	if r.idx >= r.stopAt {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Err() error {
	if r.idx >= r.stopAt {
		return r.rowsErr
	}
	return nil
}

func (r *fakeRows) Close() {}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	for i, d := range dest {
		switch p := d.(type) {
		case *int:
			*p = row[i].(int)
		case *string:
			*p = row[i].(string)
		case *float64:
			*p = row[i].(float64)
		case *time.Time:
			*p = row[i].(time.Time)
		case *TrackedType:
			*p = TrackedType(row[i].(string))
		case **string:
			if row[i] == nil {
				*p = nil
			} else {
				s := row[i].(string)
				*p = &s
			}
		case **float64:
			if row[i] == nil {
				*p = nil
			} else {
				f := row[i].(float64)
				*p = &f
			}
		case **int:
			if row[i] == nil {
				*p = nil
			} else {
				n := row[i].(int)
				*p = &n
			}
		default:
			return errors.New("unsupported scan dest")
		}
	}
	return nil
}

func TestRows2WeighIns(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := [][]any{
		{1, day, 92.5},
		{2, day.AddDate(0, 0, -1), 92.8},
	}

	weighIns, err := rows2weighIns(newFakeRows(rows))
	require.NoError(t, err)
	require.Len(t, weighIns, 2)
	assert.Equal(t, 92.5, weighIns[0].WeightKg)
	assert.Equal(t, day, weighIns[0].Date)
}

func TestRows2WeighIns_ConnDroppedMidStream(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := [][]any{
		{1, day, 92.5},
		{2, day.AddDate(0, 0, -1), 92.8},
		{3, day.AddDate(0, 0, -2), 93.1},
	}
	connErr := errors.New("unexpected EOF")

	weighIns, err := rows2weighIns(newFakeRows(rows).failAfter(1, connErr))
	require.ErrorIs(t, err, connErr)
	assert.Nil(t, weighIns)
}

func TestRows2IDSet(t *testing.T) {
	rows := [][]any{{"g-1"}, {"g-2"}, {"g-2"}}

	ids, err := rows2idSet(newFakeRows(rows))
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.Contains(t, ids, "g-1")
	assert.Contains(t, ids, "g-2")
}

func TestRows2IDSet_ConnDroppedMidStream(t *testing.T) {
	rows := [][]any{{"g-1"}, {"g-2"}}
	connErr := errors.New("conn closed")

	ids, err := rows2idSet(newFakeRows(rows).failAfter(1, connErr))
	require.ErrorIs(t, err, connErr)
	assert.Nil(t, ids)
}

func TestRows2DateSet(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := [][]any{{day}, {day.AddDate(0, 0, -1)}}

	dates, err := rows2dateSet(newFakeRows(rows))
	require.NoError(t, err)
	assert.Len(t, dates, 2)
	assert.Contains(t, dates, "2026-03-10")
	assert.Contains(t, dates, "2026-03-09")
}

func TestRows2DateSet_ConnDroppedMidStream(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	connErr := errors.New("conn closed")

	dates, err := rows2dateSet(newFakeRows([][]any{{day}}).failAfter(0, connErr))
	require.ErrorIs(t, err, connErr)
	assert.Nil(t, dates)
}

func TestRows2Activities(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := [][]any{
		{1, "Morning Run", day, "Run", "g-1", 31.2, 5.02, 410, 151, 172, "easy pace"},
		{2, "Kettlebells", day.AddDate(0, 0, -1), "Kettlebells", nil, 25.0, nil, nil, nil, nil, nil},
	}

	activities, err := rows2activities(newFakeRows(rows))
	require.NoError(t, err)
	require.Len(t, activities, 2)

	assert.Equal(t, "Morning Run", activities[0].Exercise)
	assert.Equal(t, TypeRun, activities[0].Type)
	assert.Equal(t, "g-1", activities[0].GarminActivityID)
	require.NotNil(t, activities[0].DistanceKm)
	assert.Equal(t, 5.02, *activities[0].DistanceKm)
	assert.Equal(t, "easy pace", activities[0].Notes)

	assert.Empty(t, activities[1].GarminActivityID)
	assert.Nil(t, activities[1].DistanceKm)
	assert.Nil(t, activities[1].Calories)
}

func TestRows2Activities_ConnDroppedMidStream(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := [][]any{
		{1, "Run", day, "Run", "g-1", 31.2, 5.02, 410, 151, 172, nil},
		{2, "Walk", day, "Walk", "g-2", 40.0, 3.1, 200, 110, 130, nil},
	}
	connErr := errors.New("unexpected EOF")

	activities, err := rows2activities(newFakeRows(rows).failAfter(1, connErr))
	require.ErrorIs(t, err, connErr)
	assert.Nil(t, activities)
}
