// Package gateway is the REST client keeping the local aggregates in sync
// with the remote store. It performs no retries and sets no timeout of its
// own; cancellation and deadlines belong to the caller's context or the
// injected http.Client.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"bloomshop/internal/domain"
)

// Client talks to the storefront backend.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// New builds a Client for the given base URL, e.g. "http://localhost:3000".
// A nil httpClient falls back to http.DefaultClient, a nil logger discards.
func New(baseURL string, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

type serverMessage struct {
	Message string `json:"message"`
}

// do issues one JSON request and decodes the response into out (when out is
// non-nil). Non-2xx responses become *domain errors, transport failures a
// NetworkError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg serverMessage
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		c.logger.Printf("%s %s -> %d: %s", method, path, resp.StatusCode, msg.Message)
		return &domain.ServerError{Status: resp.StatusCode, Message: msg.Message}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func emailQuery(email string) url.Values {
	return url.Values{"email": []string{email}}
}

// IsServerStatus reports whether err is a ServerError with the given status.
func IsServerStatus(err error, status int) bool {
	var se *domain.ServerError
	return errors.As(err, &se) && se.Status == status
}
