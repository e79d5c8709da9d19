// Package leaderboard is the client for the hosted database's scores table:
// one row per user, best score wins, fetched in descending order.
package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrUnavailable wraps any transport or provider failure. Callers degrade:
// the local result stays visible and the player just isn't on the board.
var ErrUnavailable = errors.New("leaderboard: service unavailable")

// Entry is one leaderboard row.
type Entry struct {
	UserID     string `json:"user_id,omitempty"`
	Username   string `json:"username"`
	TotalScore int    `json:"total_score"`
}

// Client talks to the hosted database's REST endpoint.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limit   int
}

// NewClient creates a leaderboard client for the database at baseURL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		limit:   50,
	}
}

// UpsertScore writes the user's score, keyed by identity: one row per user,
// merged on conflict. The token authenticates the write as the user.
func (c *Client) UpsertScore(ctx context.Context, token string, entry Entry) (*Entry, error) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: encode score: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rest/v1/scores", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("leaderboard: build request: %w", err)
	}
	c.setHeaders(req, token)
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=representation")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
	}

	var rows []Entry
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("leaderboard: decode row: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty upsert response", ErrUnavailable)
	}
	return &rows[0], nil
}

// Top fetches the leaderboard ordered by total score descending.
func (c *Client) Top(ctx context.Context) ([]Entry, error) {
	q := url.Values{}
	q.Set("select", "username,total_score")
	q.Set("order", "total_score.desc")
	q.Set("limit", strconv.Itoa(c.limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rest/v1/scores?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: build request: %w", err)
	}
	c.setHeaders(req, "")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
	}

	var entries []Entry
	if err := json.NewDecoder(res.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("leaderboard: decode entries: %w", err)
	}
	return entries, nil
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
