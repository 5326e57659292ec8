// Package apiclient talks to the remote quotes API. Every call is a single
// attempt: non-2xx answers become *StatusError and malformed bodies wrap
// ErrDecode.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/diewo77/devis-board/internal/models"
)

const DefaultBaseURL = "http://localhost:3001/api"

// RequestIDHeader is set on every outgoing request.
const RequestIDHeader = "X-Request-ID"

// ErrDecode is wrapped when a response body is not the expected JSON.
var ErrDecode = errors.New("decode response")

// StatusError reports a non-2xx answer.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

type Client struct {
	baseURL string
	http    *http.Client
	metrics *Metrics
}

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithMetrics records every request in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithTimeout sets a per-request timeout on a private copy of the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d <= 0 {
			return
		}
		h := *c.http
		h.Timeout = d
		c.http = &h
	}
}

// New returns a client rooted at baseURL (DefaultBaseURL when empty).
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) Quotes(ctx context.Context) ([]models.Quote, error) {
	var out []models.Quote
	if err := c.get(ctx, "/quotes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TourFormulas(ctx context.Context) ([]models.TourFormula, error) {
	var out []models.TourFormula
	if err := c.get(ctx, "/tour-formulas", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Customers(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	if err := c.get(ctx, "/customers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MotoLocations(ctx context.Context) ([]models.MotoLocation, error) {
	var out []models.MotoLocation
	if err := c.get(ctx, "/moto-locations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Accommodations(ctx context.Context) ([]models.Accommodation, error) {
	var out []models.Accommodation
	if err := c.get(ctx, "/accommodations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Options(ctx context.Context) ([]models.Option, error) {
	var out []models.Option
	if err := c.get(ctx, "/options", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteQuote issues DELETE /quotes/{id}. The response body is ignored.
func (c *Client) DeleteQuote(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, quotePath(id), nil, nil)
}

// PatchQuote sends the patch and returns the quote as stored remotely.
func (c *Client) PatchQuote(ctx context.Context, id int64, patch models.QuotePatch) (models.Quote, error) {
	var out models.Quote
	if err := c.do(ctx, http.MethodPatch, quotePath(id), patch, &out); err != nil {
		return models.Quote{}, err
	}
	return out, nil
}

// PatchCustomer sends the patch and returns the customer as stored remotely.
func (c *Client) PatchCustomer(ctx context.Context, id int64, patch models.CustomerPatch) (models.Customer, error) {
	var out models.Customer
	if err := c.do(ctx, http.MethodPatch, "/customers/"+strconv.FormatInt(id, 10), patch, &out); err != nil {
		return models.Customer{}, err
	}
	return out, nil
}

func quotePath(id int64) string {
	return "/quotes/" + strconv.FormatInt(id, 10)
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	return c.do(ctx, http.MethodGet, path, nil, dst)
}

func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	code := 0
	defer func() { c.metrics.observe(method, path, code, time.Since(start)) }()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	code = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}
	if dst == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrDecode, err)
	}
	return nil
}
