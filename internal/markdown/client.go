// Package markdown provides a client for the HTML-to-Markdown conversion
// service, the primary text-extraction path for site content.
package markdown

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint is the conversion service URL.
const DefaultEndpoint = "https://markdown.innovation-additi.fr/api/html-to-markdown"

// DefaultTimeout bounds one conversion call.
const DefaultTimeout = 30 * time.Second

// Converter converts a URL's content to markdown.
type Converter interface {
	Convert(ctx context.Context, url string) (string, error)
}

// Client calls the conversion service with bearer-token auth.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewClient creates a conversion client. An empty endpoint uses the default.
func NewClient(endpoint, token string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

type conversionRequest struct {
	URL string `json:"url"`
}

type conversionResponse struct {
	Content string `json:"content"`
}

// Convert fetches the markdown rendition of a URL.
func (c *Client) Convert(ctx context.Context, url string) (string, error) {
	if c.token == "" {
		return "", &ConversionError{URL: url, Message: "conversion API token is not configured"}
	}

	payload, err := json.Marshal(conversionRequest{URL: url})
	if err != nil {
		return "", &ConversionError{URL: url, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", &ConversionError{URL: url, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ConversionError{URL: url, Message: "conversion request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &ConversionError{URL: url, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ConversionError{URL: url, Message: "failed to read response body", Cause: err}
	}

	var converted conversionResponse
	if err := json.Unmarshal(body, &converted); err != nil {
		return "", &ConversionError{URL: url, Message: "failed to parse response JSON", Cause: err}
	}
	if converted.Content == "" {
		return "", &ConversionError{URL: url, Message: "response has no content field"}
	}

	return converted.Content, nil
}

// ConversionError represents a failure to convert a URL to markdown.
type ConversionError struct {
	URL     string
	Message string
	Cause   error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("markdown conversion error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("markdown conversion error for %s: %s", e.URL, e.Message)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}
