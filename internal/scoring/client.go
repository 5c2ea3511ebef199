package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"findash/internal/dto"
	"findash/internal/models"
)

// Client calls an external scoring service over HTTP. It posts the
// snapshot to /api/insights and expects a score/insights JSON body back.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a scoring service client. The timeout bounds the
// whole call including connection setup and body read.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Score posts the snapshot for scoring. The caller's bearer token is
// forwarded unchanged when present; this service issues no tokens of
// its own.
func (c *Client) Score(ctx context.Context, token string, snapshot models.AccountSnapshot) (*dto.ScoringResponse, error) {
	monthly := snapshot.Monthly
	payload := dto.InsightRequest{
		MonthlyData:          &monthly,
		MonthlyTrend:         snapshot.MonthlyTrend,
		CategoryDistribution: snapshot.CategoryDistribution,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scoring request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/insights", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build scoring request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scoring request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("scoring service returned status %d", resp.StatusCode)
	}

	var result dto.ScoringResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode scoring response: %w", err)
	}

	return &result, nil
}
