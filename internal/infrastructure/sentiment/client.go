// Package sentiment talks to the external sentiment-scoring service.
package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"FintechReviews/internal/domain"
	"FintechReviews/internal/ports"
)

// Client scores review texts over an HTTP JSON API.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ ports.SentimentAnalyzer = (*Client)(nil)

// NewClient creates a reusable HTTP client.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Analyze sends one review text for labeling and scoring.
func (c *Client) Analyze(ctx context.Context, text string) (domain.SentimentResult, error) {
	payload := map[string]any{"text": text}

	var resp struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := c.post(ctx, payload, &resp); err != nil {
		return domain.SentimentResult{}, err
	}

	return domain.SentimentResult{Label: resp.Label, Score: resp.Score}, nil
}

func (c *Client) post(ctx context.Context, payload any, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %v: %w", err, domain.ErrParse)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %v: %w", err, domain.ErrConnectivity)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %v: %w", err, domain.ErrConnectivity)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s: %w", resp.Status, domain.ErrConnectivity)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %v: %w", err, domain.ErrParse)
	}

	return nil
}
