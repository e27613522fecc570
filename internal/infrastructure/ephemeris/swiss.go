// Package ephemeris talks to the Swiss Ephemeris sidecar service. The sidecar
// is consumed as an oracle: this client validates payload shape and status
// before reading any value, and never trusts field order.
package ephemeris

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/falaklabs/natal-api/internal/api/metrics"
	"github.com/falaklabs/natal-api/internal/core/domain"
	"github.com/falaklabs/natal-api/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// Body indices on the sidecar wire format, matching the Swiss Ephemeris
// planet numbering (SE_SUN=0 through SE_PLUTO=9). The domain enumeration uses
// the same order, so the mapping is the identity. Kept explicit so a reorder
// on either side fails in tests rather than silently swapping planets.
var wireBody = map[domain.CelestialBody]int{
	domain.Sun: 0, domain.Moon: 1, domain.Mercury: 2, domain.Venus: 3,
	domain.Mars: 4, domain.Jupiter: 5, domain.Saturn: 6, domain.Uranus: 7,
	domain.Neptune: 8, domain.Pluto: 9,
}

// Config captures the settings for the sidecar client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client implements ports.EphemerisProvider against the sidecar HTTP API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds the client. A default timeout is applied when none is
// provided.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type calcResponse struct {
	// Status mirrors the Swiss Ephemeris return flag: negative means the
	// calculation failed. Checked before Longitude is read.
	Status    *int     `json:"status"`
	Longitude *float64 `json:"longitude"`
	Error     string   `json:"error,omitempty"`
}

type housesResponse struct {
	Cusps     []float64 `json:"cusps"`
	Ascendant *float64  `json:"ascendant"`
	Error     string    `json:"error,omitempty"`
}

// BodyLongitude returns one body's ecliptic longitude at the given Julian Day
// (UT). Transport failures, a negative status flag, and malformed payloads
// are all ordinary errors; the chart service treats them as soft for the body.
func (c *Client) BodyLongitude(ctx context.Context, julianDay float64, body domain.CelestialBody) (float64, error) {
	q := url.Values{}
	q.Set("jd", strconv.FormatFloat(julianDay, 'f', -1, 64))
	q.Set("body", strconv.Itoa(wireBody[body]))

	var payload calcResponse
	if err := c.get(ctx, "/calc?"+q.Encode(), &payload); err != nil {
		return 0, err
	}

	if payload.Status == nil || payload.Longitude == nil {
		metrics.ProviderErrorsTotal.WithLabelValues("ephemeris", "bad_payload").Inc()
		return 0, fmt.Errorf("%w: %s: incomplete calc payload", domain.ErrBodyCalculation, body.Name())
	}
	if *payload.Status < 0 {
		return 0, fmt.Errorf("%w: %s: %s", domain.ErrBodyCalculation, body.Name(), payload.Error)
	}
	if math.IsNaN(*payload.Longitude) || math.IsInf(*payload.Longitude, 0) {
		metrics.ProviderErrorsTotal.WithLabelValues("ephemeris", "bad_payload").Inc()
		return 0, fmt.Errorf("%w: %s: non-finite longitude", domain.ErrBodyCalculation, body.Name())
	}
	return *payload.Longitude, nil
}

// Houses returns the twelve cusps and ascendant. A short or malformed payload
// is a hard failure (ErrHouseCalculation) since every house-dependent output
// depends on it.
func (c *Client) Houses(ctx context.Context, julianDay float64, lat, lng float64, system string) (*ports.RawHouses, error) {
	q := url.Values{}
	q.Set("jd", strconv.FormatFloat(julianDay, 'f', -1, 64))
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("system", system)

	var payload housesResponse
	if err := c.get(ctx, "/houses?"+q.Encode(), &payload); err != nil {
		return nil, err
	}

	if payload.Error != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrHouseCalculation, payload.Error)
	}
	if len(payload.Cusps) != 12 || payload.Ascendant == nil {
		metrics.ProviderErrorsTotal.WithLabelValues("ephemeris", "bad_payload").Inc()
		return nil, fmt.Errorf("%w: got %d cusps, want 12", domain.ErrHouseCalculation, len(payload.Cusps))
	}
	for _, cusp := range payload.Cusps {
		if math.IsNaN(cusp) || math.IsInf(cusp, 0) {
			metrics.ProviderErrorsTotal.WithLabelValues("ephemeris", "bad_payload").Inc()
			return nil, fmt.Errorf("%w: non-finite cusp longitude", domain.ErrHouseCalculation)
		}
	}

	raw := &ports.RawHouses{Ascendant: *payload.Ascendant}
	copy(raw.Cusps[:], payload.Cusps)
	return raw, nil
}

// Ping checks that the sidecar answers; used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ephemeris ping: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ephemeris ping: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("ephemeris request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("ephemeris", "timeout").Inc()
		return fmt.Errorf("%w: ephemeris: %v", domain.ErrProviderUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderErrorsTotal.WithLabelValues("ephemeris", fmt.Sprintf("http_%d", resp.StatusCode)).Inc()
		return fmt.Errorf("%w: ephemeris returned status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("ephemeris", "bad_payload").Inc()
		return fmt.Errorf("%w: ephemeris payload: %v", domain.ErrProviderUnavailable, err)
	}
	return nil
}
