// Package api is the client for the storefront REST API. Every answer is a
// JSON envelope {success, message, ...payload}; payload fields are only read
// after success has been checked.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/Areeb006/FAJR/pkg/errors"
	"github.com/Areeb006/FAJR/pkg/httpclient"
	"github.com/Areeb006/FAJR/pkg/logger"
	"github.com/Areeb006/FAJR/pkg/tracing"
)

// User-facing transport messages.
const (
	MsgNetwork     = "Network error. Please check your connection and try again."
	MsgUnavailable = "Service temporarily unavailable. Please try again shortly."
	MsgBadResponse = "Unexpected response from server."
)

const (
	maxResponseBytes = 10 << 20
	tracerName       = "github.com/Areeb006/FAJR/internal/api"
)

var (
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_api_requests_total",
			Help: "Total number of storefront API calls by outcome",
		},
		[]string{"method", "route", "outcome"},
	)

	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_api_request_duration_seconds",
			Help:    "Storefront API call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

func init() {
	prometheus.MustRegister(apiRequestsTotal, apiRequestDuration)
}

// envelope is the part of every answer the client must check first.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Client talks to the storefront API.
type Client struct {
	baseURL string
	doer    httpclient.Doer
	session *Session
	log     *slog.Logger
}

// New creates a client. session may be nil, in which case cookies live only
// as long as the underlying http.Client's jar.
func New(baseURL string, doer httpclient.Doer, session *Session, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    doer,
		session: session,
		log:     log,
	}
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string { return c.baseURL }

// call describes one request. route is the path template used as the metric
// label, path the concrete path.
type call struct {
	method      string
	route       string
	path        string
	body        []byte
	contentType string
}

func (c *Client) getJSON(ctx context.Context, route, path string, out any) error {
	return c.do(ctx, call{method: http.MethodGet, route: route, path: path}, out)
}

func (c *Client) sendJSON(ctx context.Context, method, route, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return apperrors.Internal(fmt.Errorf("encode request: %w", err))
		}
	}
	return c.do(ctx, call{method: method, route: route, path: path, body: body, contentType: "application/json"}, out)
}

// do executes the call and decodes the envelope. A success=false answer
// becomes a Rejected error carrying the server's message; anything that never
// produced a readable envelope becomes a Transport error.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	correlationID := uuid.New().String()
	ctx = logger.WithCorrelationID(ctx, correlationID)
	log := logger.WithContext(ctx, c.log)

	ctx, span := tracing.Tracer(tracerName).Start(ctx, cl.method+" "+cl.route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", cl.method),
			attribute.String("http.route", cl.route),
			attribute.String("correlation_id", correlationID),
		),
	)
	defer span.End()

	var reader io.Reader = http.NoBody
	if cl.body != nil {
		reader = bytes.NewReader(cl.body)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, reader)
	if err != nil {
		return apperrors.Internal(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Correlation-ID", correlationID)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}

	start := time.Now()
	resp, err := c.doer.Do(ctx, req)
	apiRequestDuration.WithLabelValues(cl.method, cl.route).Observe(time.Since(start).Seconds())
	if err != nil {
		err = c.failure(err)
		c.record(ctx, log, cl, 0, err)
		return err
	}
	defer resp.Body.Close()

	if c.session != nil && len(resp.Cookies()) > 0 {
		if serr := c.session.Save(ctx); serr != nil {
			log.WarnContext(ctx, "failed to persist session", slog.String("error", serr.Error()))
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		err = apperrors.Transport(MsgNetwork, err)
		c.record(ctx, log, cl, resp.StatusCode, err)
		return err
	}

	err = decode(resp.StatusCode, body, out)
	c.record(ctx, log, cl, resp.StatusCode, err)
	return err
}

func decode(status int, body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if status >= http.StatusBadRequest {
			return apperrors.Rejected(status, "")
		}
		return apperrors.Transport(MsgBadResponse, err)
	}
	if !env.Success {
		if status < http.StatusBadRequest {
			status = http.StatusUnprocessableEntity
		}
		return apperrors.Rejected(status, env.Message)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.Transport(MsgBadResponse, err)
	}
	return nil
}

// failure maps an error from the transport stack. 5xx answers arrive here as
// *httpclient.StatusError; their body still carries the server's message.
func (c *Client) failure(err error) error {
	if se, ok := httpclient.AsStatusError(err); ok {
		var env envelope
		if json.Unmarshal(se.Body, &env) == nil {
			return apperrors.Rejected(se.StatusCode, env.Message)
		}
		return apperrors.Transport(MsgBadResponse, err)
	}
	if errors.Is(err, httpclient.ErrCircuitOpen) {
		return apperrors.Transport(MsgUnavailable, err)
	}
	return apperrors.Transport(MsgNetwork, err)
}

func (c *Client) record(ctx context.Context, log *slog.Logger, cl call, status int, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(apperrors.KindOf(err))
	}
	apiRequestsTotal.WithLabelValues(cl.method, cl.route, outcome).Inc()

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("outcome", outcome))
	if status > 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}

	attrs := []any{
		slog.String("method", cl.method),
		slog.String("path", cl.path),
		slog.Int("status", status),
		slog.String("outcome", outcome),
	}
	if err != nil {
		log.WarnContext(ctx, "api request failed", append(attrs, slog.String("error", err.Error()))...)
		return
	}
	log.DebugContext(ctx, "api request", attrs...)
}
