// Package client talks to the avito-client serve API on behalf of avitoctl.
// Failed calls come back as *ProblemError carrying the server's RFC 9457
// problem document, or as ErrServerUnreachable when nothing is listening.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"syscall"
)

// ErrServerUnreachable is returned when the serve API refuses the connection.
var ErrServerUnreachable = errors.New("API server not running")

// Client calls the serve API at a fixed base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New returns a Client for the serve API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	return c.exchange(ctx, http.MethodGet, path, nil, dst)
}

func (c *Client) post(ctx context.Context, path string, payload, dst any) error {
	return c.exchange(ctx, http.MethodPost, path, payload, dst)
}

// exchange sends one request and decodes a 2xx body into dst. Error
// statuses are decoded as a problem document.
func (c *Client) exchange(ctx context.Context, method, path string, payload, dst any) error {
	req, err := c.newRequest(ctx, method, path, payload)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return fmt.Errorf("%w at %s", ErrServerUnreachable, c.baseURL)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: reading body: %w", method, path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeProblem(resp.StatusCode, resp.Header.Get("Content-Type"), raw)
	}

	if dst == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%s %s: decoding body: %w", method, path, err)
	}
	return nil
}

func (c *Client) newRequest(
	ctx context.Context,
	method, path string,
	payload any,
) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json, application/problem+json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
