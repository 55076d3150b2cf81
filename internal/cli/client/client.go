// Package client wraps every outbound call to the RentWheels API. The bearer
// credential is attached automatically when the session store holds one, and
// a 401 from any endpoint tears the session down globally — individual
// screens never re-implement that policy.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"github.com/rentwheels-dev/rentwheels/internal/cli/session"
)

// requestTimeout bounds every API call; a request with no response by then
// fails like any other transport error.
const requestTimeout = 10 * time.Second

// Client is an HTTP client for the RentWheels API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	store          session.Store
	onUnauthorized func()
}

// New creates an API client that reads its credential from store.
func New(baseURL string, store session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// OnUnauthorized registers the hook invoked after a 401 teardown, typically
// to send the user back to the login screen.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// APIError is a non-2xx response from the API, carrying the server's message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed (status %d): %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// do sends one JSON request. body and out may be nil. Requests without a
// stored credential simply go out without an Authorization header;
// unauthenticated endpoints still work.
func (c *Client) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", ulid.Make().String())
	if token := c.store.Load().Token; token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	log.Debug().Str("method", method).Str("path", path).Msg("api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(path)
		return decodeError(resp)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// handleUnauthorized clears the persisted session and fires the hook. The
// credential is gone as far as the API is concerned; keeping it around only
// produces more 401s.
func (c *Client) handleUnauthorized(path string) {
	log.Warn().Str("path", path).Msg("credential rejected, clearing session")
	if err := c.store.Clear(); err != nil {
		log.Error().Err(err).Msg("failed to clear session after 401")
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else if len(data) > 0 {
		apiErr.Message = strings.TrimSpace(string(data))
	}
	return apiErr
}

func (c *Client) get(path string, out any) error {
	return c.do(http.MethodGet, path, nil, out)
}

func (c *Client) post(path string, body, out any) error {
	return c.do(http.MethodPost, path, body, out)
}

func (c *Client) put(path string, body, out any) error {
	return c.do(http.MethodPut, path, body, out)
}

func (c *Client) delete(path string) error {
	return c.do(http.MethodDelete, path, nil, nil)
}
