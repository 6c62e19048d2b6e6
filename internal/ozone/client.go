// Package ozone fetches live ozone column thickness from the OpenWeatherMap
// air-pollution API and converts it to Dobson Units.
package ozone

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/config"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/pkg/telemetry"
	"go.uber.org/zap"
)

// ErrUnavailable covers every way the live lookup can fail: transport
// errors, non-200 statuses, malformed bodies and missing fields. Callers
// branch on it with errors.Is and fall back to a manual value; the detail
// wrapped alongside it is for logs only.
var ErrUnavailable = errors.New("live ozone measurement unavailable")

// Reading is a successful ozone measurement.
type Reading struct {
	DobsonUnits float64   `json:"dobson_units"`
	OzoneUgM3   float64   `json:"ozone_ugm3"`
	FetchedAt   time.Time `json:"fetched_at"`
}

type Client struct {
	baseURL   string
	apiKey    string
	ugm3PerDU float64
	client    *http.Client
	logger    *zap.Logger
	tele      *telemetry.Telemetry
}

func NewClientWithConfig(cfg config.OzoneConfig, logger *zap.Logger, tele *telemetry.Telemetry) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		ugm3PerDU: cfg.UgM3PerDU,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
		tele:   tele,
	}
}

func (c *Client) Name() string {
	return "openweathermap-air-pollution"
}

// Fetch performs one lookup for the coordinate. No retry, no caching.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (Reading, error) {
	tracer := c.tele.GetTracer()
	ctx, span := tracer.Start(ctx, "ozone.Fetch")
	defer span.End()

	span.SetAttributes(
		attribute.Float64("lat", lat),
		attribute.Float64("lon", lon),
		attribute.String("service", c.Name()),
	)

	reading, err := c.fetchAirPollution(ctx, lat, lon)
	if err != nil {
		c.logger.Warn("Live ozone lookup failed",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err))
		span.SetAttributes(
			attribute.Bool("success", false),
			attribute.String("error", err.Error()),
		)
		return Reading{}, err
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Float64("ozone_du", reading.DobsonUnits),
	)

	c.logger.Debug("Live ozone fetched",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Float64("ozone_du", reading.DobsonUnits))

	return reading, nil
}

type airPollutionResponse struct {
	List []airPollutionEntry `json:"list"`
}

type airPollutionEntry struct {
	Dt         int64         `json:"dt"`
	Components componentsMap `json:"components"`
}

type componentsMap struct {
	O3 float64 `json:"o3"`
}

func (c *Client) fetchAirPollution(ctx context.Context, lat, lon float64) (Reading, error) {
	u, err := url.Parse(fmt.Sprintf("%s/air_pollution", c.baseURL))
	if err != nil {
		return Reading{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%.4f", lat))
	q.Set("lon", fmt.Sprintf("%.4f", lon))
	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Reading{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Reading{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Reading{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body airPollutionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Reading{}, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	if len(body.List) == 0 {
		return Reading{}, fmt.Errorf("%w: response contains no readings", ErrUnavailable)
	}

	o3 := body.List[0].Components.O3
	if o3 <= 0 {
		return Reading{}, fmt.Errorf("%w: missing or non-positive o3 component", ErrUnavailable)
	}

	du := math.Round(o3/c.ugm3PerDU*100) / 100

	return Reading{
		DobsonUnits: du,
		OzoneUgM3:   o3,
		FetchedAt:   time.Unix(body.List[0].Dt, 0).UTC(),
	}, nil
}
