// Package api is the HTTP transport to the storefront backend. Every request
// is traced, measured and guarded by a circuit breaker. Authenticated calls
// carry the stored bearer token, and a 401 answer clears it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainerrors "sitesnap/internal/domain/errors"
	"sitesnap/internal/errors"
	"sitesnap/internal/infra/resilience"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("sitesnap/api")

// DefaultTimeout bounds every backend request.
const DefaultTimeout = 15 * time.Second

const serviceName = "backend"

// TokenSource supplies the bearer token and forgets it on 401.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// DownstreamMetrics records backend call outcomes.
type DownstreamMetrics interface {
	RecordRequest(service, operation, status string, duration time.Duration)
}

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Breaker resilience.Config
}

// Client calls the backend REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	logger     *slog.Logger
	metrics    DownstreamMetrics
	breaker    *resilience.CircuitBreaker
	observer   resilience.StateObserver
	openFile   func(path string) (io.ReadCloser, error)
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m DownstreamMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithBreakerObserver reports breaker transitions to observer.
func WithBreakerObserver(observer resilience.StateObserver) Option {
	return func(c *Client) {
		c.observer = observer
	}
}

// WithFileOpener replaces how local media files are read for upload.
func WithFileOpener(open func(path string) (io.ReadCloser, error)) Option {
	return func(c *Client) {
		c.openFile = open
	}
}

// NewClient creates a backend client.
func NewClient(cfg Config, tokens TokenSource, logger *slog.Logger, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	breakerCfg := cfg.Breaker
	if breakerCfg.Name == "" {
		breakerCfg = resilience.DefaultConfig(serviceName)
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		tokens:     tokens,
		logger:     logger,
		openFile:   openLocalFile,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.breaker = resilience.NewCircuitBreaker(breakerCfg, countsAgainstBackend, c.observer, logger)

	return c
}

// countsAgainstBackend lets 4xx answers through the breaker: they describe
// the request, not the health of the server.
func countsAgainstBackend(err error) bool {
	if apiErr, ok := errors.Find[*domainerrors.APIError](err); ok {
		return apiErr.Status >= http.StatusInternalServerError
	}

	return !errors.Is(err, context.Canceled)
}

// request is one prepared backend call.
type request struct {
	method      string
	path        string
	body        []byte
	contentType string
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	req := request{method: method, path: path}
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request body")
		}
		req.body = body
		req.contentType = "application/json"
	}

	return c.do(ctx, req, out)
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	start := time.Now()
	operation := r.method + " " + routeOf(r.path)

	ctx, span := tracer.Start(ctx, serviceName+"."+r.method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", r.method),
			attribute.String("http.route", routeOf(r.path)),
			attribute.String("service", serviceName),
		),
	)
	defer span.End()

	var raw []byte
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		var sendErr error
		raw, sendErr = c.send(ctx, span, r)

		return sendErr
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.recordError(operation, start, err)

		return err
	}

	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(unwrapData(raw), out); err != nil {
			c.recordError(operation, start, err)

			return errors.Wrapf(err, "failed to decode %s response", operation)
		}
	}

	c.recordSuccess(operation, start)

	return nil
}

func (c *Client) send(ctx context.Context, span trace.Span, r request) ([]byte, error) {
	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, errors.WithStack(ctx.Err())
		}

		return nil, errors.WithStack(domainerrors.ErrNetwork.WithDetails(err.Error()))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrNetwork.WithDetails(err.Error()))
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.clearToken(ctx)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.WithStack(domainerrors.NewAPIError(resp.StatusCode, serverMessage(raw), r.method, r.path))
	}

	return raw, nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read auth token")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return nil
}

func (c *Client) clearToken(ctx context.Context) {
	if c.tokens == nil {
		return
	}

	if err := c.tokens.Clear(ctx); err != nil {
		c.logger.Warn("[APIClient] Failed to clear token after 401", slog.Any("error", err))
	}
}

func (c *Client) recordSuccess(operation string, start time.Time) {
	if c.metrics != nil {
		c.metrics.RecordRequest(serviceName, operation, "success", time.Since(start))
	}
}

func (c *Client) recordError(operation string, start time.Time, err error) {
	if c.metrics != nil {
		c.metrics.RecordRequest(serviceName, operation, "error", time.Since(start))
	}

	c.logger.Error("[APIClient] Backend call failed",
		slog.String("operation", operation),
		slog.Any("error", err),
	)
}

// serverMessage pulls a human-readable message out of an error body.
func serverMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}

	switch e := body.Error.(type) {
	case string:
		return e
	case map[string]any:
		if msg, ok := e["message"].(string); ok {
			return msg
		}
	}

	return ""
}

// routeOf keeps the resource part of a path so that ids do not blow up
// metric cardinality.
func routeOf(path string) string {
	path, _, _ = strings.Cut(path, "?")
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) > 2 {
		segments = segments[:2]
	}

	return "/" + strings.Join(segments, "/")
}
