// Package client implements the terminal client's core: the HTTP transport,
// the persisted session, the per-resource service calls and the portfolio
// editor.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const (
	loginPath     = "/auth/login"
	portfolioPath = "/portfolio/me"
)

// Client issues requests against the backend API. A token source supplies
// the bearer token; the unauthorized handler is invoked when the server
// rejects it, so the application shell can tear the session down in one
// place instead of the transport forcing a restart.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokenSource    func() string
	onUnauthorized func()
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource installs the function the transport asks for the current
// bearer token. An empty return means no token is attached.
func WithTokenSource(fn func() string) Option {
	return func(c *Client) { c.tokenSource = fn }
}

// WithUnauthorizedHandler installs the hook fired when an authenticated
// endpoint answers 401.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New returns a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, path, out)
}

// upload issues a multipart POST with a single file field.
func (c *Client) upload(ctx context.Context, path, fileName string, data []byte, out any) error {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return fmt.Errorf("build upload: %w", err)
	}
	if _, err := fw.Write(data); err != nil {
		return fmt.Errorf("build upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.send(req, path, out)
}

func (c *Client) send(req *http.Request, path string, out any) error {
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("server not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.responseError(resp, path)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) responseError(resp *http.Response, path string) error {
	message := serverMessage(resp.Body)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// A failed login is a credentials problem, not a dead session.
		if path != loginPath {
			if c.onUnauthorized != nil {
				c.onUnauthorized()
			}
			return ErrUnauthorized
		}
	case http.StatusConflict:
		// Only the versioned portfolio save speaks the conflict protocol.
		if path == portfolioPath {
			return ErrVersionConflict
		}
	}

	return &APIError{Status: resp.StatusCode, Message: message}
}

func serverMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.Error == "" {
		return string(bytes.TrimSpace(data))
	}
	return payload.Error
}
