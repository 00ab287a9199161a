package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// HTTPDoer is the part of *http.Client the transport needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds everything needed to build a Client.
type Config struct {
	BaseURL    string
	Headers    map[string]string
	HTTPClient HTTPDoer
	Retry      RetryPolicy
	Logger     *slog.Logger
}

// RequestOptions are the per call inputs accepted by every verb.
type RequestOptions struct {
	Page    int
	Params  url.Values
	Headers http.Header
	JSON    any
}

// Client issues requests against a fixed base URL, retrying rate limited
// calls. It is meant to drive one conversation at a time.
type Client struct {
	baseURL    *url.URL
	headers    http.Header
	httpClient HTTPDoer
	retry      RetryPolicy
	logger     *slog.Logger
}

func New(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	if !base.IsAbs() {
		return nil, fmt.Errorf("base url %q is not absolute", cfg.BaseURL)
	}

	// endpoints are relative, so the base must behave like a directory
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	for key, value := range cfg.Headers {
		headers.Set(key, value)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	retry := cfg.Retry
	if retry.Logger == nil {
		retry.Logger = log
	}

	return &Client{
		baseURL:    base,
		headers:    headers,
		httpClient: httpClient,
		retry:      retry,
		logger:     log,
	}, nil
}

// BaseURL returns the address every endpoint is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) Get(ctx context.Context, endpoint string, opts RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodGet, endpoint, opts)
}

func (c *Client) Post(ctx context.Context, endpoint string, opts RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPost, endpoint, opts)
}

func (c *Client) Patch(ctx context.Context, endpoint string, opts RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, endpoint, opts)
}

func (c *Client) Delete(ctx context.Context, endpoint string, opts RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, endpoint, opts)
}

// Do sends one logical request, retrying it while the server rate limits.
func (c *Client) Do(ctx context.Context, method, endpoint string, opts RequestOptions) (*Response, error) {
	target, err := c.makeURL(endpoint, opts)
	if err != nil {
		return nil, err
	}

	var body []byte
	if opts.JSON != nil {
		body, err = json.Marshal(opts.JSON)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
	}

	return Retry(ctx, c.retry, func(ctx context.Context, attempt int) (*Response, error) {
		return c.attempt(ctx, method, target, body, opts.Headers, attempt)
	})
}

func (c *Client) makeURL(endpoint string, opts RequestOptions) (string, error) {
	ref, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}

	resolved := c.baseURL.ResolveReference(ref)

	query := resolved.Query()
	for key, values := range opts.Params {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}

	resolved.RawQuery = query.Encode()

	return resolved.String(), nil
}

// attempt performs a single HTTP exchange. Transport errors are returned
// untouched, a 429 becomes a *RateLimitError.
func (c *Client) attempt(ctx context.Context, method, target string, body []byte, headers http.Header, attempt int) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, values := range c.headers {
		req.Header[key] = append([]string(nil), values...)
	}

	for key, values := range headers {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	requestID := uuid.New().String()
	req.Header.Set(requestIDHeader, requestID)
	ctx = logger.WithRequestID(ctx, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "http request failed",
			slog.String("method", method),
			slog.String("url", target),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))

		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	response := &Response{
		Method:     method,
		URL:        target,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Elapsed:    elapsed,
		Body:       respBody,
	}

	c.logResponse(ctx, response, attempt)

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitError{
			Method:  method,
			URL:     target,
			Attempt: attempt,
			Elapsed: elapsed,
		}
	}

	return response, nil
}

func (c *Client) logResponse(ctx context.Context, r *Response, attempt int) {
	c.logger.DebugContext(ctx, fmt.Sprintf("[%s]%s = %d in %s", r.Method, r.URL, r.StatusCode, r.Elapsed),
		slog.String("method", r.Method),
		slog.String("url", r.URL),
		slog.Int("status", r.StatusCode),
		slog.Duration("elapsed", r.Elapsed),
		slog.Int("attempt", attempt))

	if r.IsJSON() {
		c.logger.DebugContext(ctx, "response body", slog.Any("body", json.RawMessage(r.Body)))
	}
}
