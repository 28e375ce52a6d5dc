package health

import (
	"context"
	"fmt"
	"time"

	"github.com/ptaljaard1985/health-dashboard/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Setup creates the two tables if not present. Called once at startup by
// every cmd, so a fresh database works without a separate migration step.
func (r *Repo) Setup(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.setup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS activity (
			id                 SERIAL PRIMARY KEY,
			exercise           TEXT NOT NULL,
			date               DATE NOT NULL,
			type               TEXT NOT NULL,
			garmin_activity_id TEXT UNIQUE,
			duration           REAL,
			distance           REAL,
			calories           INT,
			avg_heart_rate     INT,
			max_heart_rate     INT,
			notes              TEXT
		);

		CREATE TABLE IF NOT EXISTS weigh_in (
			id        SERIAL PRIMARY KEY,
			date      DATE NOT NULL UNIQUE,
			weight_kg REAL NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// AddActivity inserts the activity, ignoring the write when a row with the
// same garmin activity id exists already. Returns whether a row was created.
func (r *Repo) AddActivity(ctx context.Context, activity Activity) (created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.addActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("garmin_activity_id", activity.GarminActivityID))

	var garminID *string
	if activity.GarminActivityID != "" {
		garminID = &activity.GarminActivityID
	}

	tag, err := r.db.Exec(ctx, `
		INSERT INTO activity
			(exercise, date, type, garmin_activity_id, duration, distance,
			 calories, avg_heart_rate, max_heart_rate, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (garmin_activity_id) DO NOTHING`,
		activity.Exercise, activity.Date, activity.Type, garminID,
		activity.DurationMinutes, activity.DistanceKm,
		activity.Calories, activity.AvgHeartRate, activity.MaxHeartRate,
		nullableText(activity.Notes),
	)
	if err != nil {
		return false, fmt.Errorf("insert activity: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// AddWeighIn inserts the weigh-in, ignoring the write when the date already
// has one. Returns whether a row was created.
func (r *Repo) AddWeighIn(ctx context.Context, weighIn WeighIn) (created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.addWeighIn")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", weighIn.Date.Format(DateFormat)))

	tag, err := r.db.Exec(ctx, `
		INSERT INTO weigh_in (date, weight_kg)
		VALUES ($1, $2)
		ON CONFLICT (date) DO NOTHING`,
		weighIn.Date, weighIn.WeightKg,
	)
	if err != nil {
		return false, fmt.Errorf("insert weigh-in: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Activities returns the full activity history, newest first.
func (r *Repo) Activities(ctx context.Context) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.activities")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT
			id, exercise, date, type, garmin_activity_id, duration, distance,
			calories, avg_heart_rate, max_heart_rate, notes
		FROM activity
		ORDER BY date DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	activities, err := rows2activities(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2activities: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(activities)))
	return activities, nil
}

// WeighIns returns the full weigh-in history, newest first.
func (r *Repo) WeighIns(ctx context.Context) (_ []WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.weighIns")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, date, weight_kg
		FROM weigh_in
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	weighIns, err := rows2weighIns(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2weighIns: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(weighIns)))
	return weighIns, nil
}

// GarminActivityIDs returns the set of garmin activity ids already stored.
func (r *Repo) GarminActivityIDs(ctx context.Context) (_ map[string]struct{}, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.garminActivityIDs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT garmin_activity_id FROM activity
		WHERE garmin_activity_id IS NOT NULL
	`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	ids, err := rows2idSet(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2idSet: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(ids)))
	return ids, nil
}

// WeighInDates returns the set of calendar days that already have a
// weigh-in, keyed by the canonical date format.
func (r *Repo) WeighInDates(ctx context.Context) (_ map[string]struct{}, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.weighInDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT date FROM weigh_in`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	dates, err := rows2dateSet(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2dateSet: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(dates)))
	return dates, nil
}

func rows2weighIns(rows pgx.Rows) ([]WeighIn, error) {
	var weighIns []WeighIn
	for rows.Next() {
		var w WeighIn
		if err := rows.Scan(&w.ID, &w.Date, &w.WeightKg); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		weighIns = append(weighIns, w)
	}

	// a connection drop mid-stream surfaces here, not in Next
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return weighIns, nil
}

func rows2idSet(rows pgx.Rows) (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		ids[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func rows2dateSet(rows pgx.Rows) (map[string]struct{}, error) {
	dates := make(map[string]struct{})
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		dates[date.Format(DateFormat)] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dates, nil
}

func rows2activities(rows pgx.Rows) ([]Activity, error) {
	var activities []Activity
	for rows.Next() {
		var a Activity
		var garminID, notes *string
		if err := rows.Scan(
			&a.ID, &a.Exercise, &a.Date, &a.Type, &garminID,
			&a.DurationMinutes, &a.DistanceKm,
			&a.Calories, &a.AvgHeartRate, &a.MaxHeartRate, &notes,
		); err != nil {
			return nil, err
		}
		if garminID != nil {
			a.GarminActivityID = *garminID
		}
		if notes != nil {
			a.Notes = *notes
		}
		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if activities == nil {
		activities = make([]Activity, 0)
	}
	return activities, nil
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
