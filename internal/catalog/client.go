package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kristiankunc/generate-gitignore/internal/logging/events"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodySize    = 8 << 20
)

// StatusError reports a non-successful HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}

// Client downloads the template index and template bodies.
type Client struct {
	HTTP     *http.Client
	IndexURL string
	Token    string
}

// NewClient returns a client for indexURL, falling back to DefaultIndexURL.
func NewClient(indexURL string) *Client {
	if indexURL == "" {
		indexURL = DefaultIndexURL
	}
	return &Client{
		HTTP:     &http.Client{Timeout: defaultTimeout},
		IndexURL: indexURL,
	}
}

// FetchIndex downloads and decodes the template index.
func (c *Client) FetchIndex(ctx context.Context) ([]Template, error) {
	body, err := c.get(ctx, c.IndexURL)
	if err != nil {
		return nil, err
	}
	return DecodeIndex(body)
}

// FetchTemplate downloads a single template body.
func (c *Client) FetchTemplate(ctx context.Context, url string) ([]byte, error) {
	return c.get(ctx, url)
}

// DecodeIndex parses an index document.
func DecodeIndex(data []byte) ([]Template, error) {
	var templates []Template
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("decode template index: %w", err)
	}
	return templates, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	events.Catalog.Fetch(url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "token "+c.Token)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}
