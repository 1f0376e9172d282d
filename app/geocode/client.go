// Package geocode resolves location labels to coordinates via a
// place-search service (Google Places text search), fanning lookups out
// across a bounded worker pool.
package geocode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// DefaultEndpoint is the Places API (New) text-search endpoint.
const DefaultEndpoint = "https://places.googleapis.com/v1/places:searchText"

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type Client struct {
	httpClient  *http.Client
	endpoint    string
	apiKey      string
	queryPrefix string
}

// NewClient builds a place-search client. queryPrefix (the institution
// name) is prepended to every label so lookups resolve to campus buildings
// instead of whatever shares the name elsewhere.
func NewClient(httpClient *http.Client, endpoint, apiKey, queryPrefix string) *Client {
	return &Client{
		httpClient:  httpClient,
		endpoint:    endpoint,
		apiKey:      apiKey,
		queryPrefix: queryPrefix,
	}
}

type searchRequest struct {
	TextQuery string `json:"textQuery"`
}

type searchResponse struct {
	Places []struct {
		Location struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"location"`
	} `json:"places"`
}

// Lookup resolves a single label. It returns (nil, nil) when the search
// yields no places; callers treat nil coordinates as "no map placement".
func (c *Client) Lookup(ctx context.Context, label string) (*Coordinates, error) {
	body, err := json.Marshal(searchRequest{TextQuery: c.queryPrefix + " " + label})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", "places.location")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("place search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	var search searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, fmt.Errorf("failed to decode place search response: %w", err)
	}

	if len(search.Places) == 0 {
		return nil, nil
	}

	return &Coordinates{
		Latitude:  search.Places[0].Location.Latitude,
		Longitude: search.Places[0].Location.Longitude,
	}, nil
}
