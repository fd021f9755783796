package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// DefaultBaseURL is the public, keyless Open-Meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

const dateFormat = "2006-01-02"

// Mode selects which response shape is requested: a single scalar
// snapshot or the columnar hourly series.
type Mode string

const (
	ModeCurrent Mode = "current"
	ModeHourly  Mode = "hourly"
)

// Client fetches observations from Open-Meteo for one coordinate. The
// coordinate is immutable after construction; the metric selection is
// replaceable via SetMetrics. A Client must not have its metrics mutated
// concurrently with an in-flight fetch.
type Client struct {
	baseURL    string
	lat, lng   float64
	metrics    []Metric
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
}

// NewClient creates a Client for the given coordinate with a default
// HTTP client and the public Open-Meteo endpoint. The metric selection
// starts empty.
func NewClient(lat, lng float64) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: 10 * time.Second}, DefaultBaseURL, lat, lng)
}

// NewClientWithHTTP creates a Client with an injected HTTP client and
// base URL.
func NewClientWithHTTP(httpClient *http.Client, baseURL string, lat, lng float64) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		baseURL:    baseURL,
		lat:        lat,
		lng:        lng,
		httpClient: httpClient,
		circuit:    cb,
	}
}

// SetMetrics replaces the active metric selection wholesale. Order is
// preserved for URL construction; duplicates are dropped, keeping the
// first occurrence. An empty selection is accepted and yields a request
// whose mode parameter has no value.
func (c *Client) SetMetrics(metrics ...Metric) {
	selection := make([]Metric, 0, len(metrics))
	seen := make(map[Metric]bool, len(metrics))
	for _, m := range metrics {
		if seen[m] {
			continue
		}
		seen[m] = true
		selection = append(selection, m)
	}
	c.metrics = selection
}

// Metrics returns the active selection in order.
func (c *Client) Metrics() []Metric {
	out := make([]Metric, len(c.metrics))
	copy(out, c.metrics)
	return out
}

// BuildRequestURL constructs the GET URL for a mode. Every parameter
// value goes through url.Values encoding, so values are percent-encoded.
// The mode parameter's value is the comma-join of the selected metrics'
// provider identifiers in selection order.
func (c *Client) BuildRequestURL(mode Mode, extra map[string]string) string {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", c.lat))
	values.Set("longitude", fmt.Sprintf("%f", c.lng))

	keys := make([]string, 0, len(c.metrics))
	for _, m := range c.metrics {
		keys = append(keys, m.ProviderKey())
	}
	values.Set(string(mode), strings.Join(keys, ","))

	for k, v := range extra {
		values.Set(k, v)
	}

	return fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
}

// FetchCurrent requests the latest snapshot and returns one normalized
// record. It either returns a record with the full field schema or an
// *APIRequestError; there is no partial success.
func (c *Client) FetchCurrent(ctx context.Context) (Record, error) {
	body, err := doGet(ctx, c.httpClient, c.circuit, c.BuildRequestURL(ModeCurrent, nil))
	if err != nil {
		return Record{}, newAPIRequestError(msgCurrentRequestFailed, err)
	}

	var payload struct {
		Current map[string]any `json:"current"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return Record{}, newAPIRequestError(msgCurrentRequestFailed, err)
	}
	if payload.Current == nil {
		return Record{}, newAPIRequestError(msgCurrentMissing, nil)
	}

	return normalizeCurrent(payload.Current), nil
}

// FetchHistorical requests the hourly series between two calendar dates
// (inclusive, formatted YYYY-MM-DD, no timezone conversion) and returns
// one record per provider timestamp in provider order.
func (c *Client) FetchHistorical(ctx context.Context, startDate, endDate time.Time) ([]Record, error) {
	u := c.BuildRequestURL(ModeHourly, map[string]string{
		"start_date": startDate.Format(dateFormat),
		"end_date":   endDate.Format(dateFormat),
	})

	body, err := doGet(ctx, c.httpClient, c.circuit, u)
	if err != nil {
		return nil, newAPIRequestError(msgHistoricalRequestFailed, err)
	}

	var payload struct {
		Hourly map[string]any `json:"hourly"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, newAPIRequestError(msgHistoricalRequestFailed, err)
	}
	if payload.Hourly == nil {
		return nil, newAPIRequestError(msgHistoricalMissing, nil)
	}

	return normalizeHourly(payload.Hourly), nil
}
