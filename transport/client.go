package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/dans-knaw/go-dataverse/config"
	"github.com/dans-knaw/go-dataverse/logger"
	"github.com/dans-knaw/go-dataverse/version"
)

// Client dispatches requests against one Dataverse server. It is safe for
// concurrent use: the configuration is read-only and every call builds its
// own request state.
type Client struct {
	cfg  config.Config
	base *url.URL
	http *http.Client
	log  *logger.Logger
}

// New creates a transport client from the given configuration. The logger
// may be nil, in which case all logging is discarded.
func New(cfg config.Config, log *logger.Logger) (*Client, error) {
	cfg.ApplyDefaults()

	base, err := normalizeBase(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.Nop()
	}

	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}
	httpTransport := http.DefaultTransport.(*http.Transport).Clone()
	httpTransport.DialContext = dialer.DialContext
	httpTransport.TLSHandshakeTimeout = cfg.ConnectTimeout

	return &Client{
		cfg:  cfg,
		base: base,
		http: &http.Client{
			Transport: httpTransport,
			Timeout:   cfg.ReadTimeout,
		},
		log: log.WithComponent("transport"),
	}, nil
}

// BaseURL returns the normalized server base URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.base
	return &u
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, subPath string, opts ...Option) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodGet, subPath, opts...))
}

// PostJSON performs a POST request with a JSON-encoded body. A nil body
// posts no content.
func (c *Client) PostJSON(ctx context.Context, subPath string, body any, opts ...Option) (*Response, error) {
	req := NewRequest(http.MethodPost, subPath, opts...)
	if err := setJSONBody(req, body); err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

// PostText performs a POST request with a text/plain body.
func (c *Client) PostText(ctx context.Context, subPath string, body string, opts ...Option) (*Response, error) {
	req := NewRequest(http.MethodPost, subPath, opts...)
	req.Body = []byte(body)
	req.ContentType = "text/plain; charset=utf-8"
	return c.Do(ctx, req)
}

// Put performs a PUT request with a JSON-encoded body. A nil body puts no
// content.
func (c *Client) Put(ctx context.Context, subPath string, body any, opts ...Option) (*Response, error) {
	req := NewRequest(http.MethodPut, subPath, opts...)
	if err := setJSONBody(req, body); err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

// PutText performs a PUT request with a text/plain body.
func (c *Client) PutText(ctx context.Context, subPath string, body string, opts ...Option) (*Response, error) {
	req := NewRequest(http.MethodPut, subPath, opts...)
	req.Body = []byte(body)
	req.ContentType = "text/plain; charset=utf-8"
	return c.Do(ctx, req)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, subPath string, opts ...Option) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodDelete, subPath, opts...))
}

// PostMultipart performs a POST with a multipart/form-data body holding a
// "file" part and/or a "jsonData" part. Either may be nil, not both.
func (c *Client) PostMultipart(ctx context.Context, subPath string, file *FileField, jsonData []byte, opts ...Option) (*Response, error) {
	body, contentType, err := encodeMultipart(file, jsonData)
	if err != nil {
		return nil, err
	}
	req := NewRequest(http.MethodPost, subPath, opts...)
	req.Body = body
	req.ContentType = contentType
	return c.Do(ctx, req)
}

// Do dispatches the request, retrying on transient locked-dataset failures
// with a fixed delay, up to the configured retry count. On success the
// retries are invisible; on exhaustion the final RequestFailedError is
// returned as-is.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	u, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	attempt := 0

	operation := func() (*Response, error) {
		attempt++
		resp, err := c.dispatch(ctx, req, u, requestID, attempt)
		if err != nil {
			if isLockedFailure(err) {
				c.log.Debug("resource locked, will retry",
					logger.Fields(
						logger.FieldRequestID, requestID,
						logger.FieldAttempt, attempt,
						"interval", c.cfg.LockedRetryInterval.String(),
					))
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		return resp, nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewConstantBackOff(c.cfg.LockedRetryInterval),
			uint64(c.cfg.LockedRetryCount),
		),
		ctx,
	)

	return backoff.RetryWithData(operation, policy)
}

// dispatch performs a single HTTP exchange and classifies the outcome.
func (c *Client) dispatch(ctx context.Context, req *Request, u *url.URL, requestID string, attempt int) (*Response, error) {
	ctx, span := c.startSpan(ctx, req, u, attempt)
	defer span.End()

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	hr, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, &MalformedURIError{Value: u.String(), Err: err}
	}

	if len(req.Query) > 0 {
		q := hr.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		hr.URL.RawQuery = q.Encode()
	}

	hr.Header.Set("User-Agent", version.UserAgent())
	for k, v := range req.Headers {
		hr.Header.Set(k, v)
	}
	if req.Body != nil && req.ContentType != "" {
		hr.Header.Set("Content-Type", req.ContentType)
	}

	c.applyAuth(hr, req)

	start := time.Now()
	resp, err := c.http.Do(hr)
	if err != nil {
		connErr := classifyConnError(ctx, err)
		c.log.Debug("request failed before response",
			logger.Fields(
				logger.FieldRequestID, requestID,
				logger.FieldMethod, req.Method,
				logger.FieldURL, hr.URL.String(),
				logger.FieldError, connErr.Error(),
			))
		endSpanError(span, connErr)
		return nil, connErr
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		connErr := &ConnError{Err: fmt.Errorf("read response body: %w", err)}
		endSpanError(span, connErr)
		return nil, connErr
	}

	c.log.Debug("request completed",
		logger.Fields(
			logger.FieldRequestID, requestID,
			logger.FieldMethod, req.Method,
			logger.FieldURL, hr.URL.String(),
			logger.FieldStatus, resp.StatusCode,
			logger.FieldAttempt, attempt,
			logger.FieldDuration, time.Since(start).Milliseconds(),
		))

	endSpanStatus(span, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestFailedError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(raw),
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    flattenHeaders(resp.Header),
		Body:       raw,
	}, nil
}

// setJSONBody encodes body as JSON onto the request. Nil leaves the
// request body empty.
func setJSONBody(req *Request, body any) error {
	if body == nil {
		return nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("transport: encode request body: %w", err)
	}
	req.Body = data
	req.ContentType = "application/json"
	return nil
}

// classifyConnError separates timeouts from other I/O failures.
func classifyConnError(ctx context.Context, err error) *ConnError {
	if ctx.Err() == context.DeadlineExceeded {
		return &ConnError{Timeout: true, Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &ConnError{Timeout: true, Err: err}
	}
	return &ConnError{Err: err}
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
