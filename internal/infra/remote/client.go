// Package remote contains HTTP clients for the upstream collaborators: the
// accommodation source of truth and the directions provider.
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

const defaultTimeout = 10 * time.Second

// sourceClient implements service.RemoteSource against a JSON REST API.
type sourceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSourceClient is the constructor for the remote source client.
func NewSourceClient(cfg *config.Config) service.RemoteSource {
	timeout := defaultTimeout
	baseURL := ""
	if cfg.Remote != nil {
		baseURL = cfg.Remote.BaseURL
		if cfg.Remote.Timeout > 0 {
			timeout = cfg.Remote.Timeout
		}
	}

	return &sourceClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// locationPayload is the wire shape of one remote record.
type locationPayload struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Kind             string   `json:"kind"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	PriceMonthly     *float64 `json:"price_monthly"`
	Rating           float64  `json:"rating"`
	RatingCount      int      `json:"rating_count"`
	GenderPreference string   `json:"gender_preference"`
	Amenities        struct {
		WiFi      bool `json:"wifi"`
		StudyDesk bool `json:"study_desk"`
		Meals     bool `json:"meals"`
		Laundry   bool `json:"laundry"`
		Gym       bool `json:"gym"`
		Parking   bool `json:"parking"`
		AC        bool `json:"ac"`
		Attached  bool `json:"attached_bathroom"`
	} `json:"amenities"`
	Availability string `json:"availability"`
	Verified     bool   `json:"verified"`
	Featured     bool   `json:"featured"`
}

// FetchAll retrieves every record, optionally restricted to one kind.
func (c *sourceClient) FetchAll(ctx context.Context, kind *entity.Kind) ([]*entity.Location, error) {
	endpoint := c.baseURL + "/locations"
	if kind != nil {
		q := url.Values{}
		q.Set("kind", string(*kind))
		endpoint += "?" + q.Encode()
	}

	var payloads []locationPayload
	if err := c.getJSON(ctx, endpoint, &payloads); err != nil {
		return nil, err
	}

	return toLocations(payloads), nil
}

// FetchByID retrieves a single record.
func (c *sourceClient) FetchByID(ctx context.Context, id string) (*entity.Location, error) {
	endpoint := c.baseURL + "/locations/" + url.PathEscape(id)

	var payload locationPayload
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	return toLocation(payload), nil
}

// FetchNearby retrieves records around a center point.
func (c *sourceClient) FetchNearby(ctx context.Context, lat, lng, radiusKm float64) ([]*entity.Location, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("radius_km", strconv.FormatFloat(radiusKm, 'f', -1, 64))
	endpoint := c.baseURL + "/locations/nearby?" + q.Encode()

	var payloads []locationPayload
	if err := c.getJSON(ctx, endpoint, &payloads); err != nil {
		return nil, err
	}

	return toLocations(payloads), nil
}

func (c *sourceClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build remote request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "remote source request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return service.ErrRemoteNotFound
	case resp.StatusCode != http.StatusOK:
		return errors.Errorf("remote source returned %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode remote response")
	}

	return nil
}

func toLocations(payloads []locationPayload) []*entity.Location {
	locs := make([]*entity.Location, 0, len(payloads))
	for _, p := range payloads {
		locs = append(locs, toLocation(p))
	}

	return locs
}

func toLocation(p locationPayload) *entity.Location {
	now := time.Now()

	return &entity.Location{
		ID:               p.ID,
		Name:             p.Name,
		Kind:             entity.Kind(p.Kind),
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		PriceMonthly:     p.PriceMonthly,
		Rating:           p.Rating,
		RatingCount:      p.RatingCount,
		GenderPreference: p.GenderPreference,
		Amenities: entity.Amenities{
			WiFi:      p.Amenities.WiFi,
			StudyDesk: p.Amenities.StudyDesk,
			Meals:     p.Amenities.Meals,
			Laundry:   p.Amenities.Laundry,
			Gym:       p.Amenities.Gym,
			Parking:   p.Amenities.Parking,
			AC:        p.Amenities.AC,
			Attached:  p.Amenities.Attached,
		},
		Availability: entity.Availability(p.Availability),
		Verified:     p.Verified,
		Featured:     p.Featured,
		CachedAt:     now,
		UpdatedAt:    now,
	}
}
