/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination callback_mocks_test.go -self_package mocks -package callback_test -source=callback.go -mock_names httpClient=MockHTTPClient,metricsProvider=MockMetricsProvider

package callback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/anbesabank/fyda-otp/internal/pkg/log"
)

const callbackPath = "/callback"

var logger = log.New("callback")

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type metricsProvider interface {
	CallbackDispatched(success bool)
	CallbackTime(value time.Duration)
}

// Config holds configuration options and dependencies for Notifier.
type Config struct {
	RelayURL          string
	AuthorizationCode string
	HTTPClient        httpClient
	Metrics           metricsProvider
	Tracer            trace.Tracer
}

// Notifier reports a successful verification to the relay endpoint.
type Notifier struct {
	relayURL          string
	authorizationCode string
	httpClient        httpClient
	metrics           metricsProvider
	tracer            trace.Tracer
}

// New returns a new Notifier instance.
func New(config *Config) (*Notifier, error) {
	relay, err := url.Parse(config.RelayURL)
	if err != nil {
		return nil, fmt.Errorf("parse relay url: %w", err)
	}

	if relay.Scheme == "" || relay.Host == "" {
		return nil, errors.New("relay url must be absolute")
	}

	if config.AuthorizationCode == "" {
		return nil, errors.New("authorization code is empty")
	}

	tracer := config.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}

	return &Notifier{
		relayURL:          strings.TrimSuffix(config.RelayURL, "/"),
		authorizationCode: config.AuthorizationCode,
		httpClient:        config.HTTPClient,
		metrics:           config.Metrics,
		tracer:            tracer,
	}, nil
}

// CallbackURL returns the relay callback URL carrying the authorization code and state.
func (n *Notifier) CallbackURL(state string) string {
	q := url.Values{}
	q.Set("code", n.authorizationCode)
	q.Set("state", state)

	return n.relayURL + callbackPath + "?" + q.Encode()
}

// Notify issues one GET to the callback URL in the background. The outcome is not reported
// to the caller and the request is never retried.
func (n *Notifier) Notify(ctx context.Context, state string) {
	ctx = context.WithoutCancel(ctx)

	go n.send(ctx, n.CallbackURL(state))
}

func (n *Notifier) send(ctx context.Context, target string) {
	ctx, span := n.tracer.Start(ctx, "callback.Notify", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	st := time.Now()

	status, err := n.get(ctx, target)

	n.metrics.CallbackTime(time.Since(st))
	n.metrics.CallbackDispatched(err == nil)

	span.SetAttributes(attribute.Int("http_status", status))

	if err != nil {
		span.RecordError(err)

		logger.Debugc(ctx, "Callback request failed", log.WithError(err))

		return
	}

	logger.Debugc(ctx, "Callback request completed", log.WithHTTPStatus(status))
}

func (n *Notifier) get(ctx context.Context, target string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("new request: %w", err)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("send request: %w", err)
	}

	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	return resp.StatusCode, nil
}
