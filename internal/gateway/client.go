package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/thais-adelino/projeto-skin-track/internal/quiz"
)

// Client talks to the persistence HTTP API on behalf of a quiz frontend (the
// Telegram bot, or anything else that is not in-process with the database).
// It implements quiz.ResultSink.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type saveRequest struct {
	Name            string            `json:"name"`
	SkinType        string            `json:"skinType"`
	Characteristics quiz.WeightVector `json:"characteristics"`
}

type saveResponse struct {
	Success bool   `json:"success"`
	UserID  uint   `json:"userId"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// SaveResult posts one finished classification. Callers treat a failure as
// log-and-drop; the classification flow never depends on it.
func (c *Client) SaveResult(ctx context.Context, name string, analysis quiz.Analysis) error {
	body, err := json.Marshal(saveRequest{
		Name:            name,
		SkinType:        string(analysis.SkinType),
		Characteristics: analysis.Characteristics,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/users", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var decoded saveResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("save result: decoding response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("save result: server returned %d: %s", resp.StatusCode, decoded.Error)
	}
	return nil
}

type SkinTypeStatistic struct {
	SkinType   string  `json:"skin_type"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type Statistics struct {
	Statistics []SkinTypeStatistic `json:"statistics"`
	Total      int64               `json:"total"`
}

// FetchStatistics reads the community breakdown. The call is an idempotent GET
// and safe to retry.
func (c *Client) FetchStatistics(ctx context.Context) (*Statistics, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/statistics", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch statistics: server returned %d", resp.StatusCode)
	}

	var stats Statistics
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("fetch statistics: decoding response: %w", err)
	}
	return &stats, nil
}
