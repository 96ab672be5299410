package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"roost/config"
	"roost/internal/domain/entity"
	"roost/internal/domain/service"
	"roost/internal/errors"
)

// directionsClient implements service.DirectionsProvider against a JSON REST API.
type directionsClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewDirectionsClient is the constructor for the directions provider client.
func NewDirectionsClient(cfg *config.Config) service.DirectionsProvider {
	timeout := defaultTimeout
	baseURL := ""
	if cfg.Directions != nil {
		baseURL = cfg.Directions.BaseURL
		if cfg.Directions.Timeout > 0 {
			timeout = cfg.Directions.Timeout
		}
	}

	return &directionsClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// routePayload is the wire shape of one computed route.
type routePayload struct {
	DurationSeconds int     `json:"duration_seconds"`
	DistanceMeters  float64 `json:"distance_meters"`
	Congestion      string  `json:"congestion_level"`
	PeakDuration    *int    `json:"peak_duration"`
	OffPeakDuration *int    `json:"off_peak_duration"`
}

// ComputeRoute asks the provider for a route between two coordinates.
func (c *directionsClient) ComputeRoute(ctx context.Context, originLat, originLng, destLat, destLng float64, profile entity.TravelProfile) (*service.RouteInfo, error) {
	q := url.Values{}
	q.Set("origin_lat", strconv.FormatFloat(originLat, 'f', -1, 64))
	q.Set("origin_lng", strconv.FormatFloat(originLng, 'f', -1, 64))
	q.Set("dest_lat", strconv.FormatFloat(destLat, 'f', -1, 64))
	q.Set("dest_lng", strconv.FormatFloat(destLng, 'f', -1, 64))
	q.Set("profile", string(profile))
	endpoint := c.baseURL + "/route?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build directions request")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "directions request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("directions provider returned %s after %s", resp.Status, time.Since(start).Round(time.Millisecond))
	}

	var payload routePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode directions response")
	}

	congestion := entity.CongestionLevel(payload.Congestion)
	if congestion == "" {
		congestion = entity.CongestionUnknown
	}

	return &service.RouteInfo{
		DurationSeconds: payload.DurationSeconds,
		DistanceMeters:  payload.DistanceMeters,
		Congestion:      congestion,
		PeakDuration:    payload.PeakDuration,
		OffPeakDuration: payload.OffPeakDuration,
	}, nil
}
