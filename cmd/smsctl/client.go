package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/SmsAuto_Go/internal/handler"
)

const (
	clientTimeout = 10 * time.Second
	maxRetries    = 2
	retryDelay    = 300 * time.Millisecond
)

// apiClient talks to the daemon's HTTP API.
type apiClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func newAPIClient(baseURL, apiKey string) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: clientTimeout},
	}
}

// do sends the request; GETs are retried on transport errors and 5xx.
func (c *apiClient) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	attempts := 1
	if method == http.MethodGet {
		attempts += maxRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryDelay * time.Duration(1<<uint(attempt-1))):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.apiKey != "" {
			req.Header.Set("X-API-Key", c.apiKey)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode < 500 || attempt == attempts-1 {
			return resp, nil
		}
		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
	}
	return nil, fmt.Errorf("request failed: %w", lastErr)
}

func (c *apiClient) status(ctx context.Context) (handler.StatusResponse, error) {
	var out handler.StatusResponse
	err := c.getJSON(ctx, "/api/v1/status", &out)
	return out, err
}

func (c *apiClient) log(ctx context.Context) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/log", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, http.StatusOK); err != nil {
		return "", err
	}
	data, err := io.ReadAll(resp.Body)
	return string(data), err
}

func (c *apiClient) send(ctx context.Context, req handler.IngestNotificationRequest) (handler.IngestNotificationResponse, error) {
	var out handler.IngestNotificationResponse
	resp, err := c.do(ctx, http.MethodPost, "/api/v1/notifications", req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, http.StatusAccepted); err != nil {
		return out, err
	}
	return out, json.NewDecoder(resp.Body).Decode(&out)
}

func (c *apiClient) getJSON(ctx context.Context, path string, out interface{}) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, http.StatusOK); err != nil {
		return err
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// checkStatus turns an unexpected status into an error carrying the
// server's error message when there is one.
func checkStatus(resp *http.Response, want int) error {
	if resp.StatusCode == want {
		return nil
	}
	var apiErr handler.ErrorResponse
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
		return fmt.Errorf("API returned %d: %s", resp.StatusCode, apiErr.Error)
	}
	return fmt.Errorf("API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
}
