package garmin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ptaljaard1985/health-dashboard/internal/health"
	"github.com/ptaljaard1985/health-dashboard/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrNotAuthenticated = errors.New("not authenticated, call Login first")

// Garmin returns the most recent activities first; we over-fetch and
// filter down to the lookback window client side, same as the old sync.
const activitiesFetchLimit = 100

type Client struct {
	apiURL     string
	email      string
	password   string
	token      string
	httpClient *http.Client
}

func NewClient(apiURL, email, password string, httpClient *http.Client) *Client {
	return &Client{
		apiURL:     apiURL,
		email:      email,
		password:   password,
		httpClient: httpClient,
	}
}

// Login exchanges the credentials for an access token used by all
// subsequent calls.
func (c *Client) Login(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "garminClient.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	payload, err := json.Marshal(map[string]string{
		"email":    c.email,
		"password": c.password,
	})
	if err != nil {
		return fmt.Errorf("marshal login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.apiURL+"/auth/login",
		bytes.NewReader(payload),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed, unexpected status: %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read login response: %w", err)
	}

	var loginResp loginResponse
	if err := json.Unmarshal(respBytes, &loginResp); err != nil {
		return fmt.Errorf("unmarshal login response: %w", err)
	}
	if loginResp.AccessToken == "" {
		return errors.New("login response contains no access token")
	}

	c.token = loginResp.AccessToken
	log.Debugln("garmin: authenticated")
	return nil
}

// Activities returns the activities of the last lookbackDays days,
// most recent first. Activities with an unparseable start time are
// logged and left out.
func (c *Client) Activities(ctx context.Context, lookbackDays int, now time.Time) (_ []RawActivity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "garminClient.activities")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("lookback_days", lookbackDays))

	if c.token == "" {
		return nil, ErrNotAuthenticated
	}

	url := fmt.Sprintf(
		"%s/activitylist-service/activities/search/activities?start=0&limit=%d",
		c.apiURL, activitiesFetchLimit,
	)

	var all []RawActivity
	if err := c.getJSON(ctx, url, &all); err != nil {
		return nil, fmt.Errorf("get activities: %w", err)
	}

	cutoff := health.Day(now).AddDate(0, 0, -lookbackDays)
	recent := make([]RawActivity, 0, len(all))
	for _, activity := range all {
		day, dayErr := activity.Date()
		if dayErr != nil {
			log.Errorf("garmin: skip activity %d: %s", activity.ActivityID, dayErr)
			continue
		}
		if !day.Before(cutoff) {
			recent = append(recent, activity)
		}
	}

	log.Infof("garmin: found %d activities in last %d days", len(recent), lookbackDays)
	span.SetAttributes(attribute.Int("count", len(recent)))
	return recent, nil
}

// BodyComposition returns the daily weight entries between from and to,
// both inclusive. Entries without a weight are dropped.
func (c *Client) BodyComposition(ctx context.Context, from, to time.Time) (_ []WeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "garminClient.bodyComposition")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if c.token == "" {
		return nil, ErrNotAuthenticated
	}

	url := fmt.Sprintf(
		"%s/weight-service/weight/dateRange?startDate=%s&endDate=%s",
		c.apiURL, from.Format(health.DateFormat), to.Format(health.DateFormat),
	)

	var resp bodyCompositionResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("get body composition: %w", err)
	}

	entries := make([]WeightEntry, 0, len(resp.DateWeightList))
	for _, entry := range resp.DateWeightList {
		if entry.WeightGrams <= 0 {
			continue
		}
		entries = append(entries, entry)
	}

	log.Infof("garmin: found %d weight entries between %s and %s",
		len(entries), from.Format(health.DateFormat), to.Format(health.DateFormat))
	span.SetAttributes(attribute.Int("count", len(entries)))
	return entries, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response bytes: %w", err)
	}

	if err := json.Unmarshal(respBytes, dest); err != nil {
		return fmt.Errorf("unmarshal response bytes: %w", err)
	}
	return nil
}
