// Package apiclient talks to the remote commerce API over HTTP+JSON.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/text/currency"
)

// requestIDHeader carries a fresh id per request for correlating client and server logs.
const requestIDHeader = "X-Request-ID"

// Signer decorates outgoing requests, typically with credentials.
type Signer interface {
	SignRequest(ctx context.Context, req *http.Request) error
}

type Client struct {
	http     *http.Client
	baseURL  string
	signer   Signer
	currency currency.Unit
	log      logrus.FieldLogger
}

type Option func(*Client)

// WithTimeout bounds every request. Zero keeps the http.Client default of no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

func WithSigner(s Signer) Option {
	return func(c *Client) {
		c.signer = s
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithCurrency(cur currency.Unit) Option {
	return func(c *Client) {
		c.currency = cur
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}

	c := &Client{
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL:  strings.TrimRight(baseURL, "/"),
		currency: currency.GBP,
		log:      logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.log = c.log.WithField("component", "apiclient")
	return c, nil
}

func (c *Client) get(ctx context.Context, op, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &RemoteAPIError{Op: op, Message: err.Error(), Err: err}
	}

	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}

	return c.do(op, req, out)
}

func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	return c.send(ctx, http.MethodPost, op, path, body, out)
}

func (c *Client) put(ctx context.Context, op, path string, body, out any) error {
	return c.send(ctx, http.MethodPut, op, path, body, out)
}

func (c *Client) send(ctx context.Context, method, op, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: json.Marshal: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return &RemoteAPIError{Op: op, Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(op, req, out)
}

func (c *Client) do(op string, req *http.Request, out any) error {
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	if c.signer != nil {
		if err := c.signer.SignRequest(req.Context(), req); err != nil {
			return fmt.Errorf("%s: signer.SignRequest: %w", op, err)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{
			"op":         op,
			"request_id": requestID,
		}).Warn("request failed")
		return &RemoteAPIError{Op: op, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RemoteAPIError{Op: op, StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newStatusError(op, resp.StatusCode, body)
		c.log.WithFields(logrus.Fields{
			"op":         op,
			"status":     resp.StatusCode,
			"request_id": requestID,
		}).Warn(apiErr.Message)
		return apiErr
	}

	if out == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &RemoteAPIError{Op: op, StatusCode: resp.StatusCode, Message: "malformed response", Err: err}
	}

	return nil
}
