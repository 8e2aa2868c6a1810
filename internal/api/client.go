package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/soley/admin-cli/internal/models"
	"github.com/soley/admin-cli/pkg/log"
)

// Options configures a Client.
type Options struct {
	BaseURL    string
	UploadURL  string
	Token      string
	Language   string
	DeviceID   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to the restaurant backend. One Client is built per process
// and shared; token and language are session state guarded by mu.
type Client struct {
	baseURL    string
	uploadURL  string
	httpClient *http.Client
	l          log.Logger

	mu       sync.RWMutex
	token    string
	language string
	deviceID string
}

// NewClient creates a new API client
func NewClient(opts Options, l log.Logger) *Client {
	if l == nil {
		l = log.NewNop()
	}
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		uploadURL:  opts.UploadURL,
		httpClient: hc,
		l:          l,
		token:      opts.Token,
		language:   models.NormalizeLanguage(opts.Language),
		deviceID:   opts.DeviceID,
	}
}

// SetToken replaces the bearer token used on subsequent calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetLanguage normalizes lang and uses it for Accept-Language.
func (c *Client) SetLanguage(lang string) string {
	norm := models.NormalizeLanguage(lang)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.language = norm
	return norm
}

// Language returns the current language code.
func (c *Client) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.language
}

// DeviceID returns the identifier used for one-time offer claims.
func (c *Client) DeviceID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceID
}

// IsAuthenticated reports whether a token is set.
func (c *Client) IsAuthenticated() bool {
	return c.Token() != ""
}

// Request sends one JSON request to endpoint (relative to the base URL) and
// decodes the response into out when out is non-nil. A single attempt is
// made; any failure comes back as *Error.
func (c *Client) Request(ctx context.Context, method, endpoint string, body any, headers http.Header, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return newError(0, "", fmt.Errorf("failed to marshal request: %w", err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return newError(0, "", fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	c.setSessionHeaders(req)
	for k, vs := range headers {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	return c.do(ctx, req, out)
}

func (c *Client) do(ctx context.Context, req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.l.Errorf(ctx, "api: %s %s failed: %v", req.Method, req.URL.Path, err)
		return newError(0, "", fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.l.Errorf(ctx, "api: %s %s read failed: %v", req.Method, req.URL.Path, err)
		return newError(resp.StatusCode, "", fmt.Errorf("failed to read response: %w", err))
	}
	c.l.Debugf(ctx, "api: %s %s -> %d in %s", req.Method, req.URL.Path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var detail models.ErrorDetail
		_ = json.Unmarshal(raw, &detail)
		msg := detail.Message
		if msg == "" {
			msg = detail.Error
		}
		apiErr := newError(resp.StatusCode, msg, nil)
		c.l.Errorf(ctx, "api: %s %s: %s", req.Method, req.URL.Path, apiErr.Detail())
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.l.Errorf(ctx, "api: %s %s decode failed: %v", req.Method, req.URL.Path, err)
		return newError(0, "", fmt.Errorf("failed to parse response: %w", err))
	}
	return nil
}

func (c *Client) setSessionHeaders(req *http.Request) {
	c.mu.RLock()
	token, lang := c.token, c.language
	c.mu.RUnlock()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept-Language", lang)
}

// searchParams maps list endpoints to the query key they expect for free
// text. Endpoints not listed use "search".
var searchParams = map[string]string{
	endpointFoodItems: "q",
	endpointOrders:    "q",
}

func listQuery(endpoint string, p models.ListParams, extra url.Values) string {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if s := strings.TrimSpace(p.Search); s != "" {
		key, ok := searchParams[endpoint]
		if !ok {
			key = "search"
		}
		q.Set(key, s)
	}
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	if len(q) == 0 {
		return endpoint
	}
	return endpoint + "?" + q.Encode()
}

// entity decodes a mutation or detail response. The backend wraps the record
// under key, under "data", or returns it bare.
func (c *Client) entity(ctx context.Context, method, endpoint string, body any, key string, out any) error {
	var raw map[string]json.RawMessage
	if err := c.Request(ctx, method, endpoint, body, nil, &raw); err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	for _, k := range []string{key, "data"} {
		if v, ok := raw[k]; ok && !bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			if err := json.Unmarshal(v, out); err != nil {
				return newError(0, "", fmt.Errorf("failed to parse %s: %w", k, err))
			}
			return nil
		}
	}

	whole, err := json.Marshal(raw)
	if err != nil {
		return newError(0, "", err)
	}
	if err := json.Unmarshal(whole, out); err != nil {
		return newError(0, "", fmt.Errorf("failed to parse response: %w", err))
	}
	return nil
}

func escape(id string) string {
	return url.PathEscape(id)
}
