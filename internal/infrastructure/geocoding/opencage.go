// Package geocoding resolves free-text birth locations through the OpenCage
// forward-geocoding API. Queries may be written in Arabic or Latin script;
// OpenCage handles both.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/falaklabs/natal-api/internal/api/metrics"
	"github.com/falaklabs/natal-api/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for the OpenCage client.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// OpenCageClient implements ports.GeocodingProvider against OpenCage.
type OpenCageClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewOpenCageClient builds the client. A default timeout is applied when none
// is provided.
func NewOpenCageClient(cfg Config, log zerolog.Logger) *OpenCageClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &OpenCageClient{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// openCageResponse mirrors the fields of the OpenCage payload the service
// reads; everything else is ignored.
type openCageResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Annotations struct {
			Timezone struct {
				Name string `json:"name"`
			} `json:"timezone"`
		} `json:"annotations"`
	} `json:"results"`
}

// Resolve geocodes a location string. An empty result set maps to
// ErrLocationNotFound; transport failures and non-200 statuses map to
// ErrProviderUnavailable. The timezone falls back to "UTC" when OpenCage
// omits the annotation.
func (c *OpenCageClient) Resolve(ctx context.Context, location string) (*domain.ResolvedLocation, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("key", c.apiKey)
	q.Set("language", "ar")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/geocode/v1/json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("geocoding", "timeout").Inc()
		return nil, fmt.Errorf("%w: geocoding: %v", domain.ErrProviderUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderErrorsTotal.WithLabelValues("geocoding", fmt.Sprintf("http_%d", resp.StatusCode)).Inc()
		return nil, fmt.Errorf("%w: geocoding returned status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	var payload openCageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("geocoding", "bad_payload").Inc()
		return nil, fmt.Errorf("%w: geocoding payload: %v", domain.ErrProviderUnavailable, err)
	}

	if len(payload.Results) == 0 {
		metrics.ProviderErrorsTotal.WithLabelValues("geocoding", "not_found").Inc()
		return nil, fmt.Errorf("%w: %q", domain.ErrLocationNotFound, location)
	}

	first := payload.Results[0]
	tz := first.Annotations.Timezone.Name
	if tz == "" {
		tz = "UTC"
	}

	c.log.Debug().
		Str("location", location).
		Float64("lat", first.Geometry.Lat).
		Float64("lng", first.Geometry.Lng).
		Str("timezone", tz).
		Msg("location resolved")

	return &domain.ResolvedLocation{
		Latitude:  first.Geometry.Lat,
		Longitude: first.Geometry.Lng,
		Timezone:  tz,
	}, nil
}
