package appsheet

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
	"os"
	"strconv"
	"time"
)

const (
	actionFind = "Find"
	actionAdd  = "Add"

	defaultLocale         = "es-CO"
	defaultTimeoutSeconds = 10
)

var (
	ErrMissingBaseURL   = errors.New("missing APPSHEET_BASE_URL")
	ErrMissingAccessKey = errors.New("missing APPSHEET_API_KEY")
)

// Client talks to the AppSheet table API. Every operation is a single
// synchronous POST against {base}/tables/{table}/Action; there is no retry,
// no backoff and no local cache.
//
// Supported env vars:
//   - APPSHEET_BASE_URL (required)
//   - APPSHEET_API_KEY (required)
//   - APPSHEET_LOCALE (default: es-CO)
//   - APPSHEET_TIMEOUT_SECONDS (default: 10)
type Client struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
	locale     string
}

type requestBody struct {
	Action     string           `json:"Action"`
	Properties properties       `json:"Properties"`
	Rows       []map[string]any `json:"Rows"`
}

type properties struct {
	Locale string `json:"Locale"`
}

type responseBody struct {
	Value []map[string]any `json:"value"`
}

// NewClientFromEnv creates an AppSheet client using environment variables.
func NewClientFromEnv() (*Client, error) {
	baseURL := os.Getenv("APPSHEET_BASE_URL")
	if baseURL == "" {
		log.Printf("[appsheet][client] missing APPSHEET_BASE_URL")
		return nil, ErrMissingBaseURL
	}
	accessKey := os.Getenv("APPSHEET_API_KEY")
	if accessKey == "" {
		log.Printf("[appsheet][client] missing APPSHEET_API_KEY")
		return nil, ErrMissingAccessKey
	}

	timeout := defaultTimeoutSeconds
	if v := os.Getenv("APPSHEET_TIMEOUT_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeout = parsed
		}
	}

	locale := os.Getenv("APPSHEET_LOCALE")
	if locale == "" {
		locale = defaultLocale
	}

	log.Printf("[appsheet][client] initialized locale=%s timeout=%ds", locale, timeout)
	return NewClient(baseURL, accessKey, locale, time.Duration(timeout)*time.Second), nil
}

func NewClient(baseURL, accessKey, locale string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		accessKey:  accessKey,
		locale:     locale,
	}
}

// Locale returns the locale sent on every request, so callers can format
// user-facing numbers consistently with the store.
func (c *Client) Locale() string {
	return c.locale
}

// Find lists all rows of a table. Filtering is the caller's concern.
func (c *Client) Find(ctx context.Context, table string) ([]map[string]any, error) {
	return c.do(ctx, table, actionFind, nil)
}

// Add inserts exactly one row into a table.
func (c *Client) Add(ctx context.Context, table string, row map[string]any) error {
	_, err := c.do(ctx, table, actionAdd, []map[string]any{row})
	return err
}

func (c *Client) do(ctx context.Context, table, action string, rows []map[string]any) ([]map[string]any, error) {
	if rows == nil {
		rows = []map[string]any{}
	}
	payload, err := json.Marshal(requestBody{
		Action:     action,
		Properties: properties{Locale: c.locale},
		Rows:       rows,
	})
	if err != nil {
		return nil, fmt.Errorf("appsheet %s %s: marshal request: %w", action, table, err)
	}

	endpoint := fmt.Sprintf("%s/tables/%s/Action", c.baseURL, url.PathEscape(table))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("appsheet %s %s: build request: %w", action, table, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("ApplicationAccessKey", c.accessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[appsheet][client] %s %s request failed err=%v", action, table, err)
		return nil, fmt.Errorf("appsheet %s %s: %w", action, table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[appsheet][client] %s %s unexpected status=%d body=%q", action, table, resp.StatusCode, body)
		return nil, fmt.Errorf("appsheet %s %s: unexpected status %d", action, table, resp.StatusCode)
	}

	if action == actionAdd {
		log.Printf("[appsheet][client] %s %s success", action, table)
		return nil, nil
	}

	var decoded responseBody
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Printf("[appsheet][client] %s %s malformed response err=%v", action, table, err)
		return nil, fmt.Errorf("appsheet %s %s: decode response: %w", action, table, err)
	}
	log.Printf("[appsheet][client] %s %s success rows=%d", action, table, len(decoded.Value))
	return decoded.Value, nil
}
