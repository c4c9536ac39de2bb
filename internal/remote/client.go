// Package remote is the thin HTTP client the CLI uses to drive a running
// filemru server, so every process sees the same live list.
package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	defaultServerURL = "http://127.0.0.1:37710"
	httpTimeout      = 5 * time.Second
)

// Client talks to the filemru server.
type Client struct {
	http      *http.Client
	serverURL string
}

// NewClient creates a new client. Respects the FILEMRU_URL env var, falls
// back to http://127.0.0.1:37710.
func NewClient() *Client {
	url := os.Getenv("FILEMRU_URL")
	if url == "" {
		url = defaultServerURL
	}
	return &Client{
		http:      &http.Client{Timeout: httpTimeout},
		serverURL: url,
	}
}

// NewClientURL creates a client against an explicit base URL.
func NewClientURL(url string) *Client {
	return &Client{
		http:      &http.Client{Timeout: httpTimeout},
		serverURL: url,
	}
}

// Entry mirrors one list entry as the server reports it.
type Entry struct {
	Mnemonic int    `json:"mnemonic"`
	Path     string `json:"path"`
	Label    string `json:"label"`
}

type listResponse struct {
	Entries    []Entry `json:"entries"`
	LastOpened string  `json:"last_opened"`
}

// Healthy checks if the server is reachable.
func (c *Client) Healthy() bool {
	resp, err := c.http.Get(c.serverURL + "/api/health")
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Recent returns the server's current list and last-opened path.
func (c *Client) Recent() ([]Entry, string, error) {
	data, err := c.get("/api/recent")
	if err != nil {
		return nil, "", err
	}
	var resp listResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, "", fmt.Errorf("decode list: %w", err)
	}
	return resp.Entries, resp.LastOpened, nil
}

// Add records a file access on the server.
func (c *Client) Add(path string) error {
	body, _ := json.Marshal(map[string]string{"path": path})
	_, err := c.do("POST", "/api/recent", body)
	return err
}

// Clear empties the server's list.
func (c *Client) Clear() error {
	_, err := c.do("DELETE", "/api/recent", nil)
	return err
}

// LastOpened returns the server's last-opened path.
func (c *Client) LastOpened() (string, error) {
	data, err := c.get("/api/last-opened")
	if err != nil {
		return "", err
	}
	var resp map[string]string
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("decode last opened: %w", err)
	}
	return resp["last_opened"], nil
}

// SetLastOpened records the last-opened path on the server.
func (c *Client) SetLastOpened(path string) error {
	body, _ := json.Marshal(map[string]string{"path": path})
	_, err := c.do("PUT", "/api/last-opened", body)
	return err
}

func (c *Client) get(path string) ([]byte, error) {
	resp, err := c.http.Get(c.serverURL + path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response %s: %w", path, err)
	}
	if resp.StatusCode >= 400 {
		return data, fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, data)
	}
	return data, nil
}

func (c *Client) do(method, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequest(method, c.serverURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response %s: %w", path, err)
	}
	if resp.StatusCode >= 400 {
		return data, fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, data)
	}
	return data, nil
}
