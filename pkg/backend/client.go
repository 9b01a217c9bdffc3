package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when the backend has no record of the
// requested session.
var ErrSessionNotFound = errors.New("backend session not found")

const (
	sessionCacheTTL = 30 * time.Second

	// Session fetches run inside reconciliation paths and must stay
	// snappy; chat turns keep the long client timeout.
	defaultSessionTimeout = 3 * time.Second
)

type Client struct {
	baseURL        string
	apiKey         string
	http           *http.Client
	cache          *redis.Client
	sessionTimeout time.Duration
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// NewClient builds a backend client. The redis client is optional; with nil
// every GetSession goes to the upstream.
func NewClient(baseURL, apiKey string, cache *redis.Client) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
		cache:          cache,
		sessionTimeout: defaultSessionTimeout,
	}
}

func (c *Client) Chat(ctx context.Context, sessionID, message string) (*ChatResult, error) {
	payload := chatRequest{
		SessionID: sessionID,
		Message:   message,
	}
	body, err := c.post(ctx, "/api/chat", payload)
	if err != nil {
		return nil, err
	}

	var result ChatResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	return &result, nil
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (*SessionState, error) {
	cacheKey := "backend:session:" + sessionID
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var state SessionState
			if err := json.Unmarshal(cached, &state); err == nil {
				return &state, nil
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.sessionTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/sessions/"+sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrSessionNotFound
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend error: status %d, body: %s", res.StatusCode, string(resBody))
	}

	var state SessionState
	if err := json.Unmarshal(resBody, &state); err != nil {
		return nil, fmt.Errorf("decode session response: %w", err)
	}

	if c.cache != nil {
		c.cache.Set(ctx, cacheKey, resBody, sessionCacheTTL)
	}
	return &state, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend error: status %d, body: %s", res.StatusCode, string(resBody))
	}
	return resBody, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
