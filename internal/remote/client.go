// Package remote is the HTTP client for the FreshTrack pantry store API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/freshtrackhq/freshtrack/internal/domain"
	"github.com/freshtrackhq/freshtrack/internal/service"
)

// APIError is a failure reported by the store with a human-readable message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pantry store: %s (status %d)", e.Message, e.Status)
}

// Client talks to the pantry store API. It satisfies pantry.Store.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) List(ctx context.Context) ([]domain.PantryItem, error) {
	var items []domain.PantryItem
	if err := c.do(ctx, http.MethodGet, "/pantry/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Create(ctx context.Context, item domain.PantryItem) (domain.PantryItem, error) {
	var created domain.PantryItem
	if err := c.do(ctx, http.MethodPost, "/pantry/items", item, &created); err != nil {
		return domain.PantryItem{}, err
	}
	return created, nil
}

func (c *Client) Update(ctx context.Context, id string, item domain.PantryItem) (domain.PantryItem, error) {
	var updated domain.PantryItem
	if err := c.do(ctx, http.MethodPut, "/pantry/items/"+id, item, &updated); err != nil {
		return domain.PantryItem{}, err
	}
	return updated, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/pantry/items/"+id, nil, nil)
}

// WasteStats fetches the enhanced waste statistics.
func (c *Client) WasteStats(ctx context.Context) (*service.WasteStats, error) {
	var stats service.WasteStats
	if err := c.do(ctx, http.MethodGet, "/stats/waste/enhanced", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling pantry store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) apiError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	msg := http.StatusText(resp.StatusCode)
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
