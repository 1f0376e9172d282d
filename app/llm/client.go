// Package llm delegates copy enrichment to an OpenAI-compatible chat
// completions API and enforces the round-trip contract on its output.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/campusradar/radar-sync/app/events"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
}

func NewClient(httpClient *http.Client, baseURL, apiKey, model string, maxTokens int) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		maxTokens:  maxTokens,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type enrichedEnvelope struct {
	Events []events.EnrichedEvent `json:"events"`
}

// EnrichEvents sends the full normalized batch in a single request and
// returns the enriched records. The response is validated against the
// contract (count equality, positional identity on eventName and time)
// before being returned; a violation is an error, never a silent
// pass-through. Fields the pipeline owns (imageUrl) are restored from the
// input regardless of what the model echoed.
func (c *Client) EnrichEvents(ctx context.Context, batch []events.NormalizedEvent) ([]events.EnrichedEvent, error) {
	payload, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event batch: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(payload)},
		},
		MaxTokens:      c.maxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("enrichment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("chat response contains no choices")
	}

	var envelope enrichedEnvelope
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse enriched events: %w", err)
	}

	if err := events.ValidateEnrichment(batch, envelope.Events); err != nil {
		return nil, fmt.Errorf("enrichment contract violated: %w", err)
	}

	for i := range envelope.Events {
		envelope.Events[i].ImageURL = batch[i].ImageURL
	}

	return envelope.Events, nil
}
