/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"time"

	tlsutils "github.com/trustbloc/cmdutil-go/pkg/utils/tls"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/anbesabank/fyda-otp/cmd/common"
	"github.com/anbesabank/fyda-otp/internal/pkg/log"
	"github.com/anbesabank/fyda-otp/pkg/observability/tracing"
	"github.com/anbesabank/fyda-otp/pkg/service/otpflow"
	memsessionstore "github.com/anbesabank/fyda-otp/pkg/storage/mem/sessionstore"
	"github.com/anbesabank/fyda-otp/pkg/storage/redis"
	redissessionstore "github.com/anbesabank/fyda-otp/pkg/storage/redis/sessionstore"
)

const (
	purgeInterval      = time.Minute
	redisRetryInterval = time.Second
)

type sessionStore interface {
	Create(ctx context.Context, session *otpflow.Session) error
	Get(ctx context.Context, id string) (*otpflow.Session, error)
	Update(ctx context.Context, session *otpflow.Session) error
}

// Configuration for the fyda-otp server.
type Configuration struct {
	RootCAs           *x509.CertPool
	Tracer            trace.Tracer
	IsTraceEnabled    bool
	SessionStore      sessionStore
	RedisClient       *redis.Client
	StartupParameters *startupParameters
}

func prepareConfiguration(
	ctx context.Context,
	parameters *startupParameters,
	tracer trace.Tracer,
) (*Configuration, error) {
	rootCAs, err := tlsutils.GetCertPool(parameters.tlsParameters.systemCertPool, parameters.tlsParameters.caCerts)
	if err != nil {
		return nil, err
	}

	conf := &Configuration{
		RootCAs:           rootCAs,
		Tracer:            tracer,
		IsTraceEnabled:    parameters.tracingParams.exporter != tracing.None,
		StartupParameters: parameters,
	}

	if err = createSessionStore(ctx, conf); err != nil {
		return nil, err
	}

	return conf, nil
}

// Close releases the connections held by the configuration.
func (c *Configuration) Close() {
	if c.RedisClient == nil {
		return
	}

	if err := c.RedisClient.Close(); err != nil {
		logger.Warn("Failed to close redis client", log.WithError(err))
	}
}

func (c *Configuration) tlsConfig() *tls.Config {
	return &tls.Config{RootCAs: c.RootCAs, MinVersion: tls.VersionTLS12}
}

func createSessionStore(ctx context.Context, conf *Configuration) error {
	params := conf.StartupParameters.sessionStoreParameters

	switch params.Type {
	case common.SessionStoreRedis:
		opts := []redis.ClientOpt{
			redis.WithPassword(params.RedisPassword),
			redis.WithConnectRetry(params.Timeout, redisRetryInterval),
		}

		if params.RedisTLS {
			opts = append(opts, redis.WithTLSConfig(conf.tlsConfig()))
		}

		if conf.IsTraceEnabled {
			opts = append(opts, redis.WithTraceProvider(otel.GetTracerProvider()))
		}

		client, err := redis.New(params.RedisAddrs, opts...)
		if err != nil {
			return fmt.Errorf("failed to create redis session store: %w", err)
		}

		conf.RedisClient = client
		conf.SessionStore = redissessionstore.New(client, params.TTL)
	case common.SessionStoreMem:
		store := memsessionstore.New(params.TTL)

		go store.Run(ctx, purgeInterval)

		conf.SessionStore = store
	default:
		return fmt.Errorf("%s is not a valid session store type. "+
			"run start --help to see the available options", params.Type)
	}

	logger.Info("Session store created", log.WithStore(params.Type))

	return nil
}
