// Package engage fetches raw event records from a campus event-discovery
// service (the CampusLabs Engage API).
package engage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/campusradar/radar-sync/app/events"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewClient(httpClient *http.Client, baseURL, userAgent string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

// searchResponse is the discovery API's top-level envelope.
type searchResponse struct {
	Value []events.RawEvent `json:"value"`
}

// FetchUpcoming requests up to take approved events that have not yet ended
// as of the cutoff, ordered by end time ascending. Any transport, status, or
// decode failure is returned to the caller; this boundary is fail-fast and
// never retried.
func (c *Client) FetchUpcoming(ctx context.Context, take int, endsAfter time.Time) ([]events.RawEvent, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid discovery URL: %w", err)
	}

	q := u.Query()
	q.Set("orderByField", "endsOn")
	q.Set("orderByDirection", "ascending")
	q.Set("status", "Approved")
	q.Set("take", strconv.Itoa(take))
	q.Set("endsAfter", endsAfter.UTC().Format("2006-01-02T15:04:05Z"))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	var search searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, fmt.Errorf("failed to decode discovery response: %w", err)
	}

	return search.Value, nil
}
