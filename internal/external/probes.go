package external

import (
	"context"
	"fmt"
	"net/http"
)

// UpstreamProbe is a health probe that checks an upstream base URL for
// reachability. Any response below 500 counts as healthy: 4xx still proves
// the provider is up and routing requests.
type UpstreamProbe struct {
	name   string
	url    string
	client *http.Client
}

// NewUpstreamProbe creates a probe hitting the given URL.
func NewUpstreamProbe(name, url string, client *http.Client) *UpstreamProbe {
	if client == nil {
		client = http.DefaultClient
	}
	return &UpstreamProbe{name: name, url: url, client: client}
}

// Name returns the probe's component name.
func (p *UpstreamProbe) Name() string {
	return p.name
}

// Check performs a GET against the probe URL, respecting ctx's deadline.
func (p *UpstreamProbe) Check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return fmt.Errorf("building probe request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("probing %s: %w", p.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%s returned status %d", p.name, resp.StatusCode)
	}
	return nil
}
