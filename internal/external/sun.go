package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"strollcast/internal/types"
)

// SunClient implements SunsetProvider against the forecast endpoint's daily
// astronomy fields. It shares the weather base URL but is a distinct
// collaborator with its own failure code.
type SunClient struct {
	base    *BaseClient
	baseURL string
}

// NewSunClient creates a sunset client rooted at baseURL.
func NewSunClient(base *BaseClient, baseURL string) *SunClient {
	return &SunClient{base: base, baseURL: baseURL}
}

// sunResponse mirrors the provider's daily astronomy payload.
type sunResponse struct {
	Timezone string `json:"timezone"`
	Daily    struct {
		Time   []string `json:"time"`
		Sunset []string `json:"sunset"`
	} `json:"daily"`
}

// Sunset returns the sunset instant (in UTC) and the IANA zone identifier
// for a coordinate on the given date.
func (c *SunClient) Sunset(ctx context.Context, lat, lon float64, date time.Time) (*SunsetInfo, error) {
	day := date.Format("2006-01-02")

	q := url.Values{}
	q.Set("latitude", formatCoord(lat))
	q.Set("longitude", formatCoord(lon))
	q.Set("daily", "sunset")
	q.Set("timezone", "auto")
	q.Set("start_date", day)
	q.Set("end_date", day)

	endpoint := fmt.Sprintf("%s/v1/forecast?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalUnexpected,
			"failed to build sunset request", err)
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamSunset,
			"sunset provider unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, types.NewAppError(types.ErrCodeUpstreamSunset,
			fmt.Sprintf("sunset provider returned status %d", resp.StatusCode), nil)
	}

	var payload sunResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamSunset,
			"failed to decode sunset response", err)
	}

	if len(payload.Daily.Sunset) == 0 {
		return nil, types.NewAppError(types.ErrCodeUpstreamSunset,
			fmt.Sprintf("sunset provider returned no data for %s", day), nil)
	}

	loc, err := time.LoadLocation(payload.Timezone)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamSunset,
			fmt.Sprintf("sunset provider returned unknown timezone %q", payload.Timezone), err)
	}

	sunsetLocal, err := time.ParseInLocation(hourlyTimeLayout, payload.Daily.Sunset[0], loc)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamSunset,
			fmt.Sprintf("sunset provider returned malformed sunset time %q", payload.Daily.Sunset[0]), err)
	}

	return &SunsetInfo{
		SunsetUTC: sunsetLocal.UTC(),
		Timezone:  payload.Timezone,
	}, nil
}
