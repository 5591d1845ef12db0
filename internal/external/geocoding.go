package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"strollcast/internal/types"
)

// maxGeocodingCandidates bounds the number of disambiguation candidates
// requested from the provider.
const maxGeocodingCandidates = 10

// GeocodingClient implements Geocoder against an Open-Meteo style geocoding
// search endpoint.
type GeocodingClient struct {
	base    *BaseClient
	baseURL string
}

// NewGeocodingClient creates a geocoding client rooted at baseURL.
func NewGeocodingClient(base *BaseClient, baseURL string) *GeocodingClient {
	return &GeocodingClient{base: base, baseURL: baseURL}
}

// geocodingResponse mirrors the provider's search payload. The results field
// is absent entirely when nothing matches.
type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
	} `json:"results"`
}

// Search resolves a city name to location candidates. An empty result set is
// returned as a not-found error so callers never partially compute from a
// missing location.
func (c *GeocodingClient) Search(ctx context.Context, city string) ([]types.Location, error) {
	q := url.Values{}
	q.Set("name", city)
	q.Set("count", fmt.Sprintf("%d", maxGeocodingCandidates))
	q.Set("language", "en")
	q.Set("format", "json")

	endpoint := fmt.Sprintf("%s/v1/search?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalUnexpected,
			"failed to build geocoding request", err)
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamGeocoding,
			"geocoding provider unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, types.NewAppError(types.ErrCodeUpstreamGeocoding,
			fmt.Sprintf("geocoding provider returned status %d", resp.StatusCode), nil)
	}

	var payload geocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamGeocoding,
			"failed to decode geocoding response", err)
	}

	if len(payload.Results) == 0 {
		return nil, types.NewAppError(types.ErrCodeNotFoundCity,
			fmt.Sprintf("no locations found for %q", city), nil)
	}

	locations := make([]types.Location, 0, len(payload.Results))
	for _, r := range payload.Results {
		locations = append(locations, types.Location{
			Name:    r.Name,
			Country: r.Country,
			State:   r.Admin1,
			Lat:     r.Latitude,
			Lon:     r.Longitude,
		})
	}
	return locations, nil
}
