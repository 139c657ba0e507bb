package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// DefaultCacheTTL matches the admin UI's old client cache window.
const DefaultCacheTTL = 5 * time.Minute

// Client is a typed HTTP client for the panel API with a TTL cache over GET
// responses. It is created explicitly and cleared explicitly — per-process
// state with a lifecycle, not an ambient singleton.
type Client struct {
	baseURL string
	http    *http.Client
	ttl     time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry

	token string
}

type cacheEntry struct {
	data []byte
	at   time.Time
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		ttl:     DefaultCacheTTL,
		cache:   make(map[string]cacheEntry),
	}
}

// APIError is a non-2xx response, carrying the server's {"error": ...} text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// SessionToken returns the token captured by the last successful Login.
func (c *Client) SessionToken() string {
	return c.token
}

// ClearCache drops every cached GET response.
func (c *Client) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]cacheEntry)
}

func (c *Client) get(path string, out any) error {
	c.mu.Lock()
	if e, ok := c.cache[path]; ok && time.Since(e.at) < c.ttl {
		c.mu.Unlock()
		return json.Unmarshal(e.data, out)
	}
	c.mu.Unlock()

	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	data, err := readBody(resp)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.cache[path] = cacheEntry{data: data, at: time.Now()}
	c.mu.Unlock()

	return json.Unmarshal(data, out)
}

// send performs a mutation. The cached GET response for the same endpoint is
// stale afterwards, so it is dropped.
func (c *Client) send(method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	data, err := readBody(resp)
	if err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.cache, path)
	c.mu.Unlock()

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}
	return data, nil
}
