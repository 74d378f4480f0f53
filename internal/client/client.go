package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"fsanano/item-catalog/internal/compress"
	"fsanano/item-catalog/internal/schema"
)

type Config struct {
	APIURL  string
	Timeout time.Duration
	// CacheTTL keeps GetItem results for this long. Zero disables caching.
	CacheTTL time.Duration
}

type cachedResponse struct {
	item   schema.ItemResponse
	expiry time.Time
}

type Client struct {
	client *http.Client
	config Config

	cacheMu   sync.RWMutex
	cacheData map[int]cachedResponse
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	return &Client{
		client: &http.Client{
			Transport: &HeaderTransport{
				Base: http.DefaultTransport,
			},
			Timeout: timeout,
		},
		config:    cfg,
		cacheData: make(map[int]cachedResponse),
	}
}

// Config returns the settings the client was built with.
func (c *Client) Config() Config {
	return c.config
}

// HeaderTransport sets the content negotiation headers and a request id on every call.
type HeaderTransport struct {
	Base http.RoundTripper
}

func (t *HeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", compress.Brotli)
	if req.Header.Get("X-Request-Id") == "" {
		req.Header.Set("X-Request-Id", uuid.NewString())
	}
	return t.Base.RoundTrip(req)
}

// CreateItem posts an item and returns what the server echoed back.
func (c *Client) CreateItem(ctx context.Context, item schema.ItemSchema) (schema.ItemResponse, error) {
	body, err := json.Marshal(item)
	if err != nil {
		return schema.ItemResponse{}, fmt.Errorf("failed to encode item: %w", err)
	}

	var out schema.ItemResponse
	if err := c.do(ctx, http.MethodPost, "/items/", bytes.NewReader(body), &out); err != nil {
		return schema.ItemResponse{}, fmt.Errorf("failed to create item: %w", err)
	}
	return out, nil
}

func (c *Client) GetItem(ctx context.Context, id int) (schema.ItemResponse, error) {
	if c.config.CacheTTL > 0 {
		c.cacheMu.RLock()
		data, ok := c.cacheData[id]
		c.cacheMu.RUnlock()
		if ok && time.Now().Before(data.expiry) {
			return data.item, nil
		}
	}

	var out schema.ItemResponse
	if err := c.do(ctx, http.MethodGet, "/items/"+strconv.Itoa(id), nil, &out); err != nil {
		return schema.ItemResponse{}, fmt.Errorf("failed to get item %d: %w", id, err)
	}

	if c.config.CacheTTL > 0 {
		c.cacheMu.Lock()
		c.cacheData[id] = cachedResponse{
			item:   out,
			expiry: time.Now().Add(c.config.CacheTTL),
		}
		c.cacheMu.Unlock()
	}

	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.config.APIURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}

	if resp.Header.Get("Content-Encoding") == compress.Brotli {
		resp.Body = compress.NewBrotliReadCloser(resp.Body)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		if apiErr, ok := parseErrorBody(resp.StatusCode, raw); ok {
			return apiErr
		}
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(raw))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
