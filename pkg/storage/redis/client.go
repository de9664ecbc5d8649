/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"

	"github.com/anbesabank/fyda-otp/internal/pkg/log"
)

const (
	defaultTimeout = 15 * time.Second
)

var logger = log.New("redis-client")

type clientOpts struct {
	password      string
	tlsConfig     *tls.Config
	timeout       time.Duration
	maxRetries    uint64
	retryInterval time.Duration
	traceProvider trace.TracerProvider
}

type ClientOpt func(opts *clientOpts)

func WithTraceProvider(traceProvider trace.TracerProvider) ClientOpt {
	return func(opts *clientOpts) {
		opts.traceProvider = traceProvider
	}
}

func WithPassword(password string) ClientOpt {
	return func(opts *clientOpts) {
		opts.password = password
	}
}

func WithTLSConfig(tlsConfig *tls.Config) ClientOpt {
	return func(opts *clientOpts) {
		opts.tlsConfig = tlsConfig
	}
}

func WithTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.timeout = timeout
	}
}

// WithConnectRetry retries the initial ping up to maxRetries times, waiting interval between attempts.
func WithConnectRetry(maxRetries uint64, interval time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.maxRetries = maxRetries
		opts.retryInterval = interval
	}
}

type Client struct {
	client  redis.UniversalClient
	timeout time.Duration
}

// New returns a connected Client. Two or more addrs select a cluster client, otherwise a
// single-node client is used.
func New(addrs []string, opts ...ClientOpt) (*Client, error) {
	opt := &clientOpts{
		timeout: defaultTimeout,
	}

	for _, f := range opts {
		f(opt)
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:                 addrs,
		ContextTimeoutEnabled: true,
		Password:              opt.password,
		TLSConfig:             opt.tlsConfig,
	})

	if opt.traceProvider != nil {
		err := redisotel.InstrumentTracing(client, redisotel.WithTracerProvider(opt.traceProvider))
		if err != nil {
			return nil, fmt.Errorf("instrument with tracing: %w", err)
		}
	}

	c := &Client{
		client:  client,
		timeout: opt.timeout,
	}

	ping := func() error {
		ctx, cancel := c.ContextWithTimeout()
		defer cancel()

		return c.Ping(ctx)
	}

	err := backoff.RetryNotify(ping,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(opt.retryInterval), opt.maxRetries),
		func(err error, wait time.Duration) {
			logger.Warn("Redis is not reachable, retrying",
				log.WithError(err), log.WithDuration(wait))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return c, nil
}

func (c *Client) ContextWithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.timeout)
}

// Ping checks the connection to the server.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Client) API() redis.UniversalClient {
	return c.client
}

func (c *Client) Close() error {
	return c.client.Close()
}
