/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package acs is a thin client for a GenieACS style northbound interface:
// device document queries and task submission.
package acs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/carverauto/cpeconfig/pkg/logger"
	"github.com/carverauto/cpeconfig/pkg/snapshot"
)

const (
	retryInitialInterval = 200 * time.Millisecond
	retryMaxInterval     = 2 * time.Second
	maxResponseBytes     = 16 << 20

	outcomeOK          = "ok"
	outcomeError       = "error"
	outcomeNotFound    = "not_found"
	outcomeCircuitOpen = "circuit_open"

	tracerName = "github.com/carverauto/cpeconfig/pkg/acs"
)

// Client talks to the ACS. It is safe for concurrent use.
type Client struct {
	baseURL         string
	username        string
	password        string
	taskTimeout     time.Duration
	retryMaxElapsed time.Duration
	httpClient      HTTPClient
	breaker         *CircuitBreaker
	observer        Observer
	logger          logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(h HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithObserver reports every ACS call to o.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		c.logger = log
	}
}

// NewClient validates cfg and builds a client.
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:         strings.TrimRight(cfg.URL, "/"),
		username:        cfg.Username,
		password:        cfg.Password,
		taskTimeout:     cfg.TaskTimeout.Std(),
		retryMaxElapsed: cfg.RetryMaxElapsed.Std(),
		httpClient:      &http.Client{Timeout: cfg.Timeout.Std()},
	}

	for _, o := range opts {
		o(c)
	}

	c.logger = logger.Nop(c.logger)
	c.breaker = NewCircuitBreaker("acs", cfg.Breaker, c.logger)

	return c, nil
}

// Breaker exposes the circuit breaker for health reporting.
func (c *Client) Breaker() *CircuitBreaker {
	return c.breaker
}

// GetDevice fetches the device document and returns it as a snapshot.
// Transport errors and 5xx responses are retried with exponential backoff.
func (c *Client) GetDevice(ctx context.Context, deviceID string) (*snapshot.Snapshot, error) {
	start := time.Now()

	ctx, span := startSpan(ctx, "acs.get_device", attribute.String("device.id", deviceID))
	defer span.End()

	snap, err := c.getDevice(ctx, deviceID)
	c.observe("get_device", err, start)
	endSpan(span, err)

	if err != nil {
		return nil, fmt.Errorf("get device %s: %w", deviceID, err)
	}

	return snap, nil
}

func (c *Client) getDevice(ctx context.Context, deviceID string) (*snapshot.Snapshot, error) {
	if deviceID == "" {
		return nil, ErrEmptyDeviceID
	}

	query, err := json.Marshal(map[string]string{"_id": deviceID})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	endpoint := c.baseURL + "/devices/?query=" + url.QueryEscape(string(query))

	body, err := c.getWithRetry(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not JSON", ErrInvalidResponse)
	}

	res := gjson.ParseBytes(body)
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: expected an array of devices", ErrInvalidResponse)
	}

	docs := res.Array()
	if len(docs) == 0 {
		return nil, ErrDeviceNotFound
	}

	snap, err := snapshot.FromResult(docs[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return snap, nil
}

func (c *Client) getWithRetry(ctx context.Context, endpoint string) ([]byte, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryInitialInterval
	bo.MaxInterval = retryMaxInterval

	attempt := 0

	operation := func() ([]byte, error) {
		attempt++

		body, status, err := c.do(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			if errors.Is(err, ErrCircuitOpen) || ctx.Err() != nil {
				return nil, backoff.Permanent(err)
			}

			c.logger.Debug().
				Err(err).
				Int("attempt", attempt).
				Msg("ACS request failed, retrying")

			return nil, err
		}

		if status != http.StatusOK {
			return nil, backoff.Permanent(fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, status))
		}

		return body, nil
	}

	return backoff.Retry(ctx, operation, backoff.WithBackOff(bo), backoff.WithMaxElapsedTime(c.retryMaxElapsed))
}

// do sends one request through the breaker. Transport errors and 5xx
// responses are returned as errors; any other status is returned as is.
func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	var (
		body   []byte
		status int
	)

	err = c.breaker.Execute(func() error {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		status = resp.StatusCode

		body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}

		if status >= http.StatusInternalServerError {
			return fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, status)
		}

		return nil
	})
	if err != nil {
		return nil, status, err
	}

	return body, status, nil
}

func (c *Client) observe(operation string, err error, start time.Time) {
	if c.observer == nil {
		return
	}

	c.observer.ObserveACSCall(operation, outcome(err), time.Since(start))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrDeviceNotFound):
		return outcomeNotFound
	case errors.Is(err, ErrCircuitOpen):
		return outcomeCircuitOpen
	default:
		return outcomeError
	}
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

func endSpan(span trace.Span, err error) {
	if err == nil {
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
